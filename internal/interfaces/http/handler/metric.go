package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apphealth "github.com/wellbeing/backend/internal/application/health"
)

// MetricHandler handles body measurement API endpoints
type MetricHandler struct {
	BaseHandler
	metricService *apphealth.MetricService
}

// NewMetricHandler creates a new MetricHandler
func NewMetricHandler(metricService *apphealth.MetricService) *MetricHandler {
	return &MetricHandler{metricService: metricService}
}

// Record godoc
// @Summary      Record a body measurement
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        request body apphealth.RecordMetricRequest true "Measurement details"
// @Success      201 {object} APIResponse[apphealth.MetricResponse]
// @Router       /health/metrics [post]
func (h *MetricHandler) Record(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req apphealth.RecordMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.metricService.Record(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get a measurement by ID
// @Tags         health
// @Produce      json
// @Param        id path string true "Measurement ID"
// @Success      200 {object} APIResponse[apphealth.MetricResponse]
// @Router       /health/metrics/{id} [get]
func (h *MetricHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid measurement ID")
		return
	}

	resp, err := h.metricService.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List measurements
// @Tags         health
// @Produce      json
// @Param        metric_type query string false "Filter by metric type"
// @Success      200 {object} APIResponse[[]apphealth.MetricResponse]
// @Router       /health/metrics [get]
func (h *MetricHandler) List(c *gin.Context) {
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
	if metricType := c.Query("metric_type"); metricType != "" {
		filter.Filters = map[string]interface{}{"metric_type": metricType}
	}

	resp, err := h.metricService.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update a measurement
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        id path string true "Measurement ID"
// @Param        request body apphealth.UpdateMetricRequest true "Fields to update"
// @Success      200 {object} APIResponse[apphealth.MetricResponse]
// @Router       /health/metrics/{id} [put]
func (h *MetricHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid measurement ID")
		return
	}

	var req apphealth.UpdateMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.metricService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a measurement
// @Tags         health
// @Param        id path string true "Measurement ID"
// @Success      204
// @Router       /health/metrics/{id} [delete]
func (h *MetricHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid measurement ID")
		return
	}

	if err := h.metricService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
