package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appnotification "github.com/wellbeing/backend/internal/application/notification"
)

// NotificationHandler handles in-app notification API endpoints
type NotificationHandler struct {
	BaseHandler
	notificationService *appnotification.Service
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *appnotification.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List godoc
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Success      200 {object} APIResponse[[]appnotification.NotificationResponse]
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
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

	resp, err := h.notificationService.List(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Unread godoc
// @Summary      List unread notifications
// @Tags         notifications
// @Produce      json
// @Success      200 {object} APIResponse[[]appnotification.NotificationResponse]
// @Router       /notifications/unread [get]
func (h *NotificationHandler) Unread(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.notificationService.Unread(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// MarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        id path string true "Notification ID"
// @Success      200 {object} APIResponse[appnotification.NotificationResponse]
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid notification ID")
		return
	}

	resp, err := h.notificationService.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a notification
// @Tags         notifications
// @Param        id path string true "Notification ID"
// @Success      204
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
