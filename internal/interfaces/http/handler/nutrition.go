package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apphealth "github.com/wellbeing/backend/internal/application/health"
)

// NutritionHandler handles meal log API endpoints
type NutritionHandler struct {
	BaseHandler
	nutritionService *apphealth.NutritionService
}

// NewNutritionHandler creates a new NutritionHandler
func NewNutritionHandler(nutritionService *apphealth.NutritionService) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

// Log godoc
// @Summary      Log a meal
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        request body apphealth.LogMealRequest true "Meal details"
// @Success      201 {object} APIResponse[apphealth.NutritionResponse]
// @Router       /health/nutrition [post]
func (h *NutritionHandler) Log(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req apphealth.LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.nutritionService.Log(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get a meal entry by ID
// @Tags         health
// @Produce      json
// @Param        id path string true "Entry ID"
// @Success      200 {object} APIResponse[apphealth.NutritionResponse]
// @Router       /health/nutrition/{id} [get]
func (h *NutritionHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	resp, err := h.nutritionService.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List meal entries
// @Tags         health
// @Produce      json
// @Param        meal_type query string false "Filter by meal type"
// @Success      200 {object} APIResponse[[]apphealth.NutritionResponse]
// @Router       /health/nutrition [get]
func (h *NutritionHandler) List(c *gin.Context) {
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
	if mealType := c.Query("meal_type"); mealType != "" {
		filter.Filters = map[string]interface{}{"meal_type": mealType}
	}

	resp, err := h.nutritionService.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update a meal entry
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        id path string true "Entry ID"
// @Param        request body apphealth.LogMealRequest true "Meal details"
// @Success      200 {object} APIResponse[apphealth.NutritionResponse]
// @Router       /health/nutrition/{id} [put]
func (h *NutritionHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	var req apphealth.LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.nutritionService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a meal entry
// @Tags         health
// @Param        id path string true "Entry ID"
// @Success      204
// @Router       /health/nutrition/{id} [delete]
func (h *NutritionHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.nutritionService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
