package handler

import (
	"github.com/gin-gonic/gin"
	appwellbeing "github.com/wellbeing/backend/internal/application/wellbeing"
)

// WellbeingHandler handles the cross-domain wellbeing API endpoints
type WellbeingHandler struct {
	BaseHandler
	wellbeingService *appwellbeing.Service
}

// NewWellbeingHandler creates a new WellbeingHandler
func NewWellbeingHandler(wellbeingService *appwellbeing.Service) *WellbeingHandler {
	return &WellbeingHandler{wellbeingService: wellbeingService}
}

// Dashboard godoc
// @Summary      Unified wellbeing dashboard
// @Description  Aggregates financial, health, balance and productivity scores into one view
// @Tags         wellbeing
// @Produce      json
// @Success      200 {object} APIResponse[appwellbeing.DashboardResponse]
// @Router       /wellbeing/dashboard [get]
func (h *WellbeingHandler) Dashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.wellbeingService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Insights godoc
// @Summary      Cross-domain insights
// @Tags         wellbeing
// @Produce      json
// @Param        days query int false "Window in days, default 30"
// @Success      200 {object} APIResponse[appwellbeing.InsightsResponse]
// @Router       /wellbeing/insights [get]
func (h *WellbeingHandler) Insights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	days := queryInt(c, "days", 30, 1, 365)

	resp, err := h.wellbeingService.Insights(c.Request.Context(), userID, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
