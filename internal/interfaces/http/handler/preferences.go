package handler

import (
	"github.com/gin-gonic/gin"
	apppreferences "github.com/wellbeing/backend/internal/application/preferences"
)

// PreferencesHandler handles user preference API endpoints
type PreferencesHandler struct {
	BaseHandler
	preferencesService *apppreferences.Service
}

// NewPreferencesHandler creates a new PreferencesHandler
func NewPreferencesHandler(preferencesService *apppreferences.Service) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

// Get godoc
// @Summary      Get current user preferences
// @Tags         preferences
// @Produce      json
// @Success      200 {object} APIResponse[apppreferences.PreferencesResponse]
// @Router       /preferences [get]
func (h *PreferencesHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.preferencesService.Get(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update user preferences
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        request body apppreferences.UpdatePreferencesRequest true "Fields to change"
// @Success      200 {object} APIResponse[apppreferences.PreferencesResponse]
// @Router       /preferences [put]
func (h *PreferencesHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req apppreferences.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.preferencesService.Update(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
