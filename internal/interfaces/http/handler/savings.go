package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appfinancial "github.com/wellbeing/backend/internal/application/financial"
)

// SavingsHandler handles savings goal API endpoints
type SavingsHandler struct {
	BaseHandler
	savingsService *appfinancial.SavingsService
}

// NewSavingsHandler creates a new SavingsHandler
func NewSavingsHandler(savingsService *appfinancial.SavingsService) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// Create godoc
// @Summary      Create a savings goal
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        request body appfinancial.CreateSavingsGoalRequest true "Goal details"
// @Success      201 {object} APIResponse[appfinancial.SavingsGoalResponse]
// @Router       /financial/savings-goals [post]
func (h *SavingsHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appfinancial.CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.savingsService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List godoc
// @Summary      List savings goals
// @Tags         financial
// @Produce      json
// @Success      200 {object} APIResponse[[]appfinancial.SavingsGoalResponse]
// @Router       /financial/savings-goals [get]
func (h *SavingsHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.savingsService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Contribute godoc
// @Summary      Add a contribution to a goal
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        id path string true "Goal ID"
// @Param        request body appfinancial.ContributeRequest true "Contribution amount"
// @Success      200 {object} APIResponse[appfinancial.SavingsGoalResponse]
// @Router       /financial/savings-goals/{id}/contributions [post]
func (h *SavingsHandler) Contribute(c *gin.Context) {
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

	var req appfinancial.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.savingsService.Contribute(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update a savings goal
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        id path string true "Goal ID"
// @Param        request body appfinancial.CreateSavingsGoalRequest true "Goal details"
// @Success      200 {object} APIResponse[appfinancial.SavingsGoalResponse]
// @Router       /financial/savings-goals/{id} [put]
func (h *SavingsHandler) Update(c *gin.Context) {
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

	var req appfinancial.CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.savingsService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a savings goal
// @Tags         financial
// @Param        id path string true "Goal ID"
// @Success      204
// @Router       /financial/savings-goals/{id} [delete]
func (h *SavingsHandler) Delete(c *gin.Context) {
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

	if err := h.savingsService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
