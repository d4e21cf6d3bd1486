package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appfinancial "github.com/wellbeing/backend/internal/application/financial"
)

// BudgetHandler handles budget API endpoints
type BudgetHandler struct {
	BaseHandler
	budgetService *appfinancial.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *appfinancial.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// Set godoc
// @Summary      Create or replace a category budget for a month
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        request body appfinancial.SetBudgetRequest true "Budget details"
// @Success      200 {object} APIResponse[appfinancial.BudgetStatusResponse]
// @Router       /financial/budgets [put]
func (h *BudgetHandler) Set(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appfinancial.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.budgetService.Set(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListStatus godoc
// @Summary      List budgets with spend status for a month
// @Tags         financial
// @Produce      json
// @Param        month query string false "Month in YYYY-MM format, defaults to current"
// @Success      200 {object} APIResponse[[]appfinancial.BudgetStatusResponse]
// @Router       /financial/budgets [get]
func (h *BudgetHandler) ListStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	month := c.Query("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}

	resp, err := h.budgetService.ListStatus(c.Request.Context(), userID, month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a budget
// @Tags         financial
// @Param        id path string true "Budget ID"
// @Success      204
// @Router       /financial/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	if err := h.budgetService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Suggestions godoc
// @Summary      Suggest budgets from recent spending
// @Tags         financial
// @Produce      json
// @Success      200 {object} APIResponse[[]appfinancial.BudgetSuggestionResponse]
// @Router       /financial/budgets/suggestions [get]
func (h *BudgetHandler) Suggestions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.budgetService.Suggestions(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
