package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appfinancial "github.com/wellbeing/backend/internal/application/financial"
)

// TransactionHandler handles financial transaction API endpoints
type TransactionHandler struct {
	BaseHandler
	txService *appfinancial.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(txService *appfinancial.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// Create godoc
// @Summary      Record a transaction
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        request body appfinancial.CreateTransactionRequest true "Transaction details"
// @Success      201 {object} APIResponse[appfinancial.TransactionResponse]
// @Router       /financial/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appfinancial.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.txService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get a transaction by ID
// @Tags         financial
// @Produce      json
// @Param        id path string true "Transaction ID"
// @Success      200 {object} APIResponse[appfinancial.TransactionResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /financial/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	resp, err := h.txService.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List transactions
// @Tags         financial
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search in description and merchant"
// @Success      200 {object} APIResponse[[]appfinancial.TransactionResponse]
// @Router       /financial/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
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

	page, err := h.txService.List(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update a transaction
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        id path string true "Transaction ID"
// @Param        request body appfinancial.UpdateTransactionRequest true "Fields to update"
// @Success      200 {object} APIResponse[appfinancial.TransactionResponse]
// @Router       /financial/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req appfinancial.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.txService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a transaction
// @Tags         financial
// @Param        id path string true "Transaction ID"
// @Success      204
// @Router       /financial/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.txService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Categorize godoc
// @Summary      Suggest a category for a merchant or description
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        request body appfinancial.CategorizeRequest true "Merchant and description"
// @Success      200 {object} APIResponse[appfinancial.CategorizeResponse]
// @Router       /financial/transactions/categorize [post]
func (h *TransactionHandler) Categorize(c *gin.Context) {
	var req appfinancial.CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	h.Success(c, h.txService.Categorize(req))
}
