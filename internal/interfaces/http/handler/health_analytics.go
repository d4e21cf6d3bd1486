package handler

import (
	"github.com/gin-gonic/gin"
	apphealth "github.com/wellbeing/backend/internal/application/health"
)

// HealthAnalyticsHandler handles health analytics API endpoints
type HealthAnalyticsHandler struct {
	BaseHandler
	analyticsService *apphealth.AnalyticsService
}

// NewHealthAnalyticsHandler creates a new HealthAnalyticsHandler
func NewHealthAnalyticsHandler(analyticsService *apphealth.AnalyticsService) *HealthAnalyticsHandler {
	return &HealthAnalyticsHandler{analyticsService: analyticsService}
}

// Score godoc
// @Summary      Composite health score
// @Tags         health
// @Produce      json
// @Success      200 {object} APIResponse[apphealth.HealthScoreResponse]
// @Router       /health/analytics/score [get]
func (h *HealthAnalyticsHandler) Score(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.analyticsService.Score(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Trends godoc
// @Summary      Metric trend over a window
// @Tags         health
// @Produce      json
// @Param        metric_type query string true "Metric type"
// @Param        days query int false "Window in days, default 30"
// @Success      200 {object} APIResponse[apphealth.TrendResponse]
// @Router       /health/analytics/trends [get]
func (h *HealthAnalyticsHandler) Trends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	metricType := c.Query("metric_type")
	if metricType == "" {
		h.BadRequest(c, "metric_type is required")
		return
	}
	days := queryInt(c, "days", 30, 1, 365)

	resp, err := h.analyticsService.Trends(c.Request.Context(), userID, metricType, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// TDEE godoc
// @Summary      Estimate BMR and daily energy expenditure
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        request body apphealth.TDEERequest true "Optional overrides for profile values"
// @Success      200 {object} APIResponse[apphealth.TDEEResponse]
// @Failure      422 {object} ErrorResponse
// @Router       /health/analytics/tdee [post]
func (h *HealthAnalyticsHandler) TDEE(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	// All overrides are optional so an empty body is allowed
	var req apphealth.TDEERequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	resp, err := h.analyticsService.TDEE(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// SleepAnalysis godoc
// @Summary      Sleep quality analysis over a window
// @Tags         health
// @Produce      json
// @Param        days query int false "Window in days, default 30"
// @Success      200 {object} APIResponse[apphealth.SleepAnalysisResponse]
// @Router       /health/analytics/sleep [get]
func (h *HealthAnalyticsHandler) SleepAnalysis(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	days := queryInt(c, "days", 30, 1, 365)

	resp, err := h.analyticsService.SleepAnalysis(c.Request.Context(), userID, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Dashboard godoc
// @Summary      Health dashboard
// @Tags         health
// @Produce      json
// @Success      200 {object} APIResponse[apphealth.DashboardResponse]
// @Router       /health/analytics/dashboard [get]
func (h *HealthAnalyticsHandler) Dashboard(c *gin.Context) {
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
