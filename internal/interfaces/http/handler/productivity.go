package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appproductivity "github.com/wellbeing/backend/internal/application/productivity"
)

// FocusHandler handles focus tracking API endpoints
type FocusHandler struct {
	BaseHandler
	focusService *appproductivity.FocusService
}

// NewFocusHandler creates a new FocusHandler
func NewFocusHandler(focusService *appproductivity.FocusService) *FocusHandler {
	return &FocusHandler{focusService: focusService}
}

// Log godoc
// @Summary      Log a focus day
// @Tags         productivity
// @Accept       json
// @Produce      json
// @Param        request body appproductivity.LogFocusDayRequest true "Focus day details"
// @Success      201 {object} APIResponse[appproductivity.FocusDayResponse]
// @Router       /productivity/focus [post]
func (h *FocusHandler) Log(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appproductivity.LogFocusDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.focusService.Log(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get a focus day by ID
// @Tags         productivity
// @Produce      json
// @Param        id path string true "Focus day ID"
// @Success      200 {object} APIResponse[appproductivity.FocusDayResponse]
// @Router       /productivity/focus/{id} [get]
func (h *FocusHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid focus day ID")
		return
	}

	resp, err := h.focusService.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List focus days
// @Tags         productivity
// @Produce      json
// @Success      200 {object} APIResponse[[]appproductivity.FocusDayResponse]
// @Router       /productivity/focus [get]
func (h *FocusHandler) List(c *gin.Context) {
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

	resp, err := h.focusService.List(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a focus day
// @Tags         productivity
// @Param        id path string true "Focus day ID"
// @Success      204
// @Router       /productivity/focus/{id} [delete]
func (h *FocusHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid focus day ID")
		return
	}

	if err := h.focusService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Score godoc
// @Summary      Productivity score
// @Tags         productivity
// @Produce      json
// @Param        days query int false "Window in days, default 30"
// @Success      200 {object} APIResponse[appproductivity.ScoreResponse]
// @Router       /productivity/score [get]
func (h *FocusHandler) Score(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	days := queryInt(c, "days", 30, 1, 365)

	resp, err := h.focusService.Score(c.Request.Context(), userID, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Dashboard godoc
// @Summary      Productivity dashboard
// @Tags         productivity
// @Produce      json
// @Param        days query int false "Window in days, default 30"
// @Success      200 {object} APIResponse[appproductivity.DashboardResponse]
// @Router       /productivity/dashboard [get]
func (h *FocusHandler) Dashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	days := queryInt(c, "days", 30, 1, 365)

	resp, err := h.focusService.Dashboard(c.Request.Context(), userID, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
