package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appfinancial "github.com/wellbeing/backend/internal/application/financial"
)

// InvestmentHandler handles investment API endpoints
type InvestmentHandler struct {
	BaseHandler
	investmentService *appfinancial.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler
func NewInvestmentHandler(investmentService *appfinancial.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// Create godoc
// @Summary      Register an investment holding
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        request body appfinancial.CreateInvestmentRequest true "Holding details"
// @Success      201 {object} APIResponse[appfinancial.InvestmentResponse]
// @Router       /financial/investments [post]
func (h *InvestmentHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appfinancial.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.investmentService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List godoc
// @Summary      List investment holdings
// @Tags         financial
// @Produce      json
// @Success      200 {object} APIResponse[[]appfinancial.InvestmentResponse]
// @Router       /financial/investments [get]
func (h *InvestmentHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.investmentService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update an investment holding
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        id path string true "Investment ID"
// @Param        request body appfinancial.CreateInvestmentRequest true "Holding details"
// @Success      200 {object} APIResponse[appfinancial.InvestmentResponse]
// @Router       /financial/investments/{id} [put]
func (h *InvestmentHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid investment ID")
		return
	}

	var req appfinancial.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.investmentService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete an investment holding
// @Tags         financial
// @Param        id path string true "Investment ID"
// @Success      204
// @Router       /financial/investments/{id} [delete]
func (h *InvestmentHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid investment ID")
		return
	}

	if err := h.investmentService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
