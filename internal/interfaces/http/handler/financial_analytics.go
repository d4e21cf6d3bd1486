package handler

import (
	"github.com/gin-gonic/gin"
	appfinancial "github.com/wellbeing/backend/internal/application/financial"
)

// FinancialAnalyticsHandler handles financial analytics API endpoints
type FinancialAnalyticsHandler struct {
	BaseHandler
	analyticsService *appfinancial.AnalyticsService
}

// NewFinancialAnalyticsHandler creates a new FinancialAnalyticsHandler
func NewFinancialAnalyticsHandler(analyticsService *appfinancial.AnalyticsService) *FinancialAnalyticsHandler {
	return &FinancialAnalyticsHandler{analyticsService: analyticsService}
}

// Summary godoc
// @Summary      Monthly income and spending summary
// @Tags         financial
// @Produce      json
// @Param        months query int false "Number of months to include, default 6"
// @Success      200 {object} APIResponse[appfinancial.SummaryResponse]
// @Router       /financial/analytics/summary [get]
func (h *FinancialAnalyticsHandler) Summary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	months := queryInt(c, "months", 6, 1, 36)

	resp, err := h.analyticsService.Summary(c.Request.Context(), userID, months)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Dashboard godoc
// @Summary      Financial dashboard
// @Tags         financial
// @Produce      json
// @Success      200 {object} APIResponse[appfinancial.DashboardResponse]
// @Router       /financial/analytics/dashboard [get]
func (h *FinancialAnalyticsHandler) Dashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.analyticsService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// HealthScore godoc
// @Summary      Financial health score
// @Tags         financial
// @Produce      json
// @Success      200 {object} APIResponse[appfinancial.HealthScoreResponse]
// @Router       /financial/analytics/health-score [get]
func (h *FinancialAnalyticsHandler) HealthScore(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.analyticsService.HealthScore(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
