package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appworklife "github.com/wellbeing/backend/internal/application/worklife"
)

// WorkSessionHandler handles work session API endpoints
type WorkSessionHandler struct {
	BaseHandler
	sessionService *appworklife.SessionService
}

// NewWorkSessionHandler creates a new WorkSessionHandler
func NewWorkSessionHandler(sessionService *appworklife.SessionService) *WorkSessionHandler {
	return &WorkSessionHandler{sessionService: sessionService}
}

// Log godoc
// @Summary      Log a work session
// @Tags         worklife
// @Accept       json
// @Produce      json
// @Param        request body appworklife.LogSessionRequest true "Session details"
// @Success      201 {object} APIResponse[appworklife.SessionResponse]
// @Router       /worklife/sessions [post]
func (h *WorkSessionHandler) Log(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appworklife.LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.sessionService.Log(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get a work session by ID
// @Tags         worklife
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} APIResponse[appworklife.SessionResponse]
// @Router       /worklife/sessions/{id} [get]
func (h *WorkSessionHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	resp, err := h.sessionService.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List work sessions
// @Tags         worklife
// @Produce      json
// @Success      200 {object} APIResponse[[]appworklife.SessionResponse]
// @Router       /worklife/sessions [get]
func (h *WorkSessionHandler) List(c *gin.Context) {
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

	resp, err := h.sessionService.List(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update a work session
// @Tags         worklife
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body appworklife.LogSessionRequest true "Session details"
// @Success      200 {object} APIResponse[appworklife.SessionResponse]
// @Router       /worklife/sessions/{id} [put]
func (h *WorkSessionHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	var req appworklife.LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.sessionService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a work session
// @Tags         worklife
// @Param        id path string true "Session ID"
// @Success      204
// @Router       /worklife/sessions/{id} [delete]
func (h *WorkSessionHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// LifeEventHandler handles life event API endpoints
type LifeEventHandler struct {
	BaseHandler
	eventService *appworklife.LifeEventService
}

// NewLifeEventHandler creates a new LifeEventHandler
func NewLifeEventHandler(eventService *appworklife.LifeEventService) *LifeEventHandler {
	return &LifeEventHandler{eventService: eventService}
}

// Log godoc
// @Summary      Log a life event
// @Tags         worklife
// @Accept       json
// @Produce      json
// @Param        request body appworklife.LogLifeEventRequest true "Event details"
// @Success      201 {object} APIResponse[appworklife.LifeEventResponse]
// @Router       /worklife/events [post]
func (h *LifeEventHandler) Log(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appworklife.LogLifeEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.eventService.Log(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get a life event by ID
// @Tags         worklife
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} APIResponse[appworklife.LifeEventResponse]
// @Router       /worklife/events/{id} [get]
func (h *LifeEventHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid event ID")
		return
	}

	resp, err := h.eventService.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List life events
// @Tags         worklife
// @Produce      json
// @Success      200 {object} APIResponse[[]appworklife.LifeEventResponse]
// @Router       /worklife/events [get]
func (h *LifeEventHandler) List(c *gin.Context) {
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

	resp, err := h.eventService.List(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update a life event
// @Tags         worklife
// @Accept       json
// @Produce      json
// @Param        id path string true "Event ID"
// @Param        request body appworklife.LogLifeEventRequest true "Event details"
// @Success      200 {object} APIResponse[appworklife.LifeEventResponse]
// @Router       /worklife/events/{id} [put]
func (h *LifeEventHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid event ID")
		return
	}

	var req appworklife.LogLifeEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.eventService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a life event
// @Tags         worklife
// @Param        id path string true "Event ID"
// @Success      204
// @Router       /worklife/events/{id} [delete]
func (h *LifeEventHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid event ID")
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// BalanceHandler handles work-life balance analytics API endpoints
type BalanceHandler struct {
	BaseHandler
	balanceService *appworklife.BalanceService
}

// NewBalanceHandler creates a new BalanceHandler
func NewBalanceHandler(balanceService *appworklife.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// Score godoc
// @Summary      Work-life balance score
// @Tags         worklife
// @Produce      json
// @Param        days query int false "Window in days, default 30"
// @Success      200 {object} APIResponse[appworklife.BalanceScoreResponse]
// @Router       /worklife/balance [get]
func (h *BalanceHandler) Score(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	days := queryInt(c, "days", 30, 1, 365)

	resp, err := h.balanceService.BalanceScore(c.Request.Context(), userID, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// AlwaysOn godoc
// @Summary      Always-on ratio of late and weekend work
// @Tags         worklife
// @Produce      json
// @Param        days query int false "Window in days, default 30"
// @Success      200 {object} APIResponse[appworklife.AlwaysOnResponse]
// @Router       /worklife/always-on [get]
func (h *BalanceHandler) AlwaysOn(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	days := queryInt(c, "days", 30, 1, 365)

	resp, err := h.balanceService.AlwaysOn(c.Request.Context(), userID, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// BurnoutRisk godoc
// @Summary      Burnout risk assessment
// @Tags         worklife
// @Produce      json
// @Param        days query int false "Window in days, default 30"
// @Success      200 {object} APIResponse[appworklife.BurnoutRiskResponse]
// @Router       /worklife/burnout [get]
func (h *BalanceHandler) BurnoutRisk(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	days := queryInt(c, "days", 30, 1, 365)

	resp, err := h.balanceService.BurnoutRisk(c.Request.Context(), userID, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
