package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appwellbeing "github.com/wellbeing/backend/internal/application/wellbeing"
)

// TrackingHandler handles mood check-in and wellbeing goal API endpoints
type TrackingHandler struct {
	BaseHandler
	trackingService *appwellbeing.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler
func NewTrackingHandler(trackingService *appwellbeing.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// LogMood godoc
// @Summary      Log a mood check-in
// @Tags         wellbeing
// @Accept       json
// @Produce      json
// @Param        request body appwellbeing.LogMoodRequest true "Mood check-in"
// @Success      201 {object} APIResponse[appwellbeing.MoodEntryResponse]
// @Router       /wellbeing/mood [post]
func (h *TrackingHandler) LogMood(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appwellbeing.LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.trackingService.LogMood(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListMoods godoc
// @Summary      List mood check-ins
// @Tags         wellbeing
// @Produce      json
// @Success      200 {object} APIResponse[[]appwellbeing.MoodEntryResponse]
// @Router       /wellbeing/mood [get]
func (h *TrackingHandler) ListMoods(c *gin.Context) {
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

	resp, err := h.trackingService.ListMoods(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteMood godoc
// @Summary      Delete a mood check-in
// @Tags         wellbeing
// @Param        id path string true "Mood entry ID"
// @Success      204
// @Router       /wellbeing/mood/{id} [delete]
func (h *TrackingHandler) DeleteMood(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid mood entry ID")
		return
	}

	if err := h.trackingService.DeleteMood(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateGoal godoc
// @Summary      Create a wellbeing goal
// @Tags         wellbeing
// @Accept       json
// @Produce      json
// @Param        request body appwellbeing.CreateGoalRequest true "Goal details"
// @Success      201 {object} APIResponse[appwellbeing.GoalResponse]
// @Router       /wellbeing/goals [post]
func (h *TrackingHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appwellbeing.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.trackingService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListGoals godoc
// @Summary      List wellbeing goals
// @Tags         wellbeing
// @Produce      json
// @Success      200 {object} APIResponse[[]appwellbeing.GoalResponse]
// @Router       /wellbeing/goals [get]
func (h *TrackingHandler) ListGoals(c *gin.Context) {
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

	resp, err := h.trackingService.ListGoals(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateGoal godoc
// @Summary      Update a wellbeing goal
// @Tags         wellbeing
// @Accept       json
// @Produce      json
// @Param        id path string true "Goal ID"
// @Param        request body appwellbeing.UpdateGoalRequest true "Goal details"
// @Success      200 {object} APIResponse[appwellbeing.GoalResponse]
// @Router       /wellbeing/goals/{id} [put]
func (h *TrackingHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid goal ID")
		return
	}

	var req appwellbeing.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.trackingService.UpdateGoal(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteGoal godoc
// @Summary      Delete a wellbeing goal
// @Tags         wellbeing
// @Param        id path string true "Goal ID"
// @Success      204
// @Router       /wellbeing/goals/{id} [delete]
func (h *TrackingHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid goal ID")
		return
	}

	if err := h.trackingService.DeleteGoal(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
