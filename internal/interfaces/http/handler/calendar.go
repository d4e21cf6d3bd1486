package handler

import (
	"github.com/gin-gonic/gin"
	appcalendar "github.com/wellbeing/backend/internal/application/calendar"
)

// CalendarHandler handles the calendar integration API endpoints
type CalendarHandler struct {
	BaseHandler
	calendarService *appcalendar.Service
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(calendarService *appcalendar.Service) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// Status godoc
// @Summary      Calendar connection status
// @Tags         calendar
// @Produce      json
// @Success      200 {object} APIResponse[appcalendar.StatusResponse]
// @Router       /calendar/status [get]
func (h *CalendarHandler) Status(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	h.Success(c, h.calendarService.Status(c.Request.Context(), userID))
}

// Connect godoc
// @Summary      Start the calendar OAuth flow
// @Tags         calendar
// @Produce      json
// @Success      200 {object} APIResponse[appcalendar.ConnectResponse]
// @Router       /calendar/connect [post]
func (h *CalendarHandler) Connect(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	h.Success(c, h.calendarService.Connect(c.Request.Context(), userID))
}

// Disconnect godoc
// @Summary      Disconnect the calendar integration
// @Tags         calendar
// @Success      204
// @Router       /calendar/connect [delete]
func (h *CalendarHandler) Disconnect(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	h.calendarService.Disconnect(c.Request.Context(), userID)
	h.NoContent(c)
}

// Sync godoc
// @Summary      Run a calendar sync
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse[appcalendar.SyncResponse]
// @Router       /calendar/sync [post]
func (h *CalendarHandler) Sync(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	// The window override is optional so an empty body is allowed
	var req appcalendar.SyncRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	h.Success(c, h.calendarService.Sync(c.Request.Context(), userID, req))
}
