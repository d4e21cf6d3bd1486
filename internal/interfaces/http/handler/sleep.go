package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apphealth "github.com/wellbeing/backend/internal/application/health"
)

// SleepHandler handles sleep log API endpoints
type SleepHandler struct {
	BaseHandler
	sleepService *apphealth.SleepService
}

// NewSleepHandler creates a new SleepHandler
func NewSleepHandler(sleepService *apphealth.SleepService) *SleepHandler {
	return &SleepHandler{sleepService: sleepService}
}

// Log godoc
// @Summary      Log a night of sleep
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        request body apphealth.LogSleepRequest true "Sleep details"
// @Success      201 {object} APIResponse[apphealth.SleepResponse]
// @Router       /health/sleep [post]
func (h *SleepHandler) Log(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req apphealth.LogSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.sleepService.Log(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get a sleep record by ID
// @Tags         health
// @Produce      json
// @Param        id path string true "Record ID"
// @Success      200 {object} APIResponse[apphealth.SleepResponse]
// @Router       /health/sleep/{id} [get]
func (h *SleepHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	resp, err := h.sleepService.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List sleep records
// @Tags         health
// @Produce      json
// @Success      200 {object} APIResponse[[]apphealth.SleepResponse]
// @Router       /health/sleep [get]
func (h *SleepHandler) List(c *gin.Context) {
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

	resp, err := h.sleepService.List(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update a sleep record
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        id path string true "Record ID"
// @Param        request body apphealth.LogSleepRequest true "Sleep details"
// @Success      200 {object} APIResponse[apphealth.SleepResponse]
// @Router       /health/sleep/{id} [put]
func (h *SleepHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	var req apphealth.LogSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.sleepService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a sleep record
// @Tags         health
// @Param        id path string true "Record ID"
// @Success      204
// @Router       /health/sleep/{id} [delete]
func (h *SleepHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	if err := h.sleepService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
