package handler

import (
	"github.com/gin-gonic/gin"
	appidentity "github.com/wellbeing/backend/internal/application/identity"
)

// ProfileHandler handles user profile API endpoints
type ProfileHandler struct {
	BaseHandler
	profileService *appidentity.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *appidentity.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile godoc
// @Summary      Get the current user's profile
// @Tags         profile
// @Produce      json
// @Success      200 {object} APIResponse[appidentity.UserResponse]
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateProfile godoc
// @Summary      Update profile fields
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body appidentity.UpdateProfileRequest true "Fields to update"
// @Success      200 {object} APIResponse[appidentity.UserResponse]
// @Router       /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appidentity.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ChangePassword godoc
// @Summary      Change the account password
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body appidentity.ChangePasswordRequest true "Current and new password"
// @Success      204
// @Failure      401 {object} ErrorResponse
// @Router       /profile/password [post]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appidentity.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.profileService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
