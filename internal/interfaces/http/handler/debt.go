package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appfinancial "github.com/wellbeing/backend/internal/application/financial"
)

// DebtHandler handles debt API endpoints
type DebtHandler struct {
	BaseHandler
	debtService *appfinancial.DebtService
}

// NewDebtHandler creates a new DebtHandler
func NewDebtHandler(debtService *appfinancial.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// Create godoc
// @Summary      Register a debt
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        request body appfinancial.CreateDebtRequest true "Debt details"
// @Success      201 {object} APIResponse[appfinancial.DebtResponse]
// @Router       /financial/debts [post]
func (h *DebtHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appfinancial.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.debtService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List godoc
// @Summary      List debts
// @Tags         financial
// @Produce      json
// @Success      200 {object} APIResponse[[]appfinancial.DebtResponse]
// @Router       /financial/debts [get]
func (h *DebtHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.debtService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update a debt
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        id path string true "Debt ID"
// @Param        request body appfinancial.CreateDebtRequest true "Debt details"
// @Success      200 {object} APIResponse[appfinancial.DebtResponse]
// @Router       /financial/debts/{id} [put]
func (h *DebtHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	var req appfinancial.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.debtService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// RecordPayment godoc
// @Summary      Record a payment against a debt
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        id path string true "Debt ID"
// @Param        request body appfinancial.DebtPaymentRequest true "Payment amount"
// @Success      200 {object} APIResponse[appfinancial.DebtResponse]
// @Router       /financial/debts/{id}/payments [post]
func (h *DebtHandler) RecordPayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	var req appfinancial.DebtPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.debtService.RecordPayment(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a debt
// @Tags         financial
// @Param        id path string true "Debt ID"
// @Success      204
// @Router       /financial/debts/{id} [delete]
func (h *DebtHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid debt ID")
		return
	}

	if err := h.debtService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// PayoffPlan godoc
// @Summary      Simulate a debt payoff plan
// @Description  Projects payoff order and timeline using the avalanche or snowball strategy
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        request body appfinancial.PayoffPlanRequest true "Strategy and monthly amount"
// @Success      200 {object} APIResponse[appfinancial.PayoffPlanResponse]
// @Router       /financial/debts/payoff-plan [post]
func (h *DebtHandler) PayoffPlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appfinancial.PayoffPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.debtService.PayoffPlan(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
