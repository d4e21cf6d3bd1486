package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apphealth "github.com/wellbeing/backend/internal/application/health"
)

// ExerciseHandler handles exercise log API endpoints
type ExerciseHandler struct {
	BaseHandler
	exerciseService *apphealth.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler
func NewExerciseHandler(exerciseService *apphealth.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// Log godoc
// @Summary      Log an exercise session
// @Description  Calories are estimated from MET tables when not supplied
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        request body apphealth.LogExerciseRequest true "Session details"
// @Success      201 {object} APIResponse[apphealth.ExerciseResponse]
// @Router       /health/exercises [post]
func (h *ExerciseHandler) Log(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req apphealth.LogExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.exerciseService.Log(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get an exercise session by ID
// @Tags         health
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} APIResponse[apphealth.ExerciseResponse]
// @Router       /health/exercises/{id} [get]
func (h *ExerciseHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	resp, err := h.exerciseService.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List exercise sessions
// @Tags         health
// @Produce      json
// @Param        exercise_type query string false "Filter by exercise type"
// @Success      200 {object} APIResponse[[]apphealth.ExerciseResponse]
// @Router       /health/exercises [get]
func (h *ExerciseHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	req, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	if exType := c.Query("exercise_type"); exType != "" {
		filter.Filters = map[string]interface{}{"exercise_type": exType}
	}

	resp, err := h.exerciseService.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update an exercise session
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body apphealth.LogExerciseRequest true "Session details"
// @Success      200 {object} APIResponse[apphealth.ExerciseResponse]
// @Router       /health/exercises/{id} [put]
func (h *ExerciseHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	var req apphealth.LogExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.exerciseService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete an exercise session
// @Tags         health
// @Param        id path string true "Session ID"
// @Success      204
// @Router       /health/exercises/{id} [delete]
func (h *ExerciseHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	if err := h.exerciseService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
