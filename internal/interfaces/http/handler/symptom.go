package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apphealth "github.com/wellbeing/backend/internal/application/health"
)

// SymptomHandler handles symptom tracking API endpoints
type SymptomHandler struct {
	BaseHandler
	symptomService *apphealth.SymptomService
}

// NewSymptomHandler creates a new SymptomHandler
func NewSymptomHandler(symptomService *apphealth.SymptomService) *SymptomHandler {
	return &SymptomHandler{symptomService: symptomService}
}

// Report godoc
// @Summary      Report a symptom episode
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        request body apphealth.ReportSymptomRequest true "Symptom details"
// @Success      201 {object} APIResponse[apphealth.SymptomResponse]
// @Router       /health/symptoms [post]
func (h *SymptomHandler) Report(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req apphealth.ReportSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.symptomService.Report(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get godoc
// @Summary      Get a symptom episode by ID
// @Tags         health
// @Produce      json
// @Param        id path string true "Symptom ID"
// @Success      200 {object} APIResponse[apphealth.SymptomResponse]
// @Router       /health/symptoms/{id} [get]
func (h *SymptomHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid symptom ID")
		return
	}

	resp, err := h.symptomService.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List symptom episodes
// @Tags         health
// @Produce      json
// @Success      200 {object} APIResponse[[]apphealth.SymptomResponse]
// @Router       /health/symptoms [get]
func (h *SymptomHandler) List(c *gin.Context) {
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

	resp, err := h.symptomService.List(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Update a symptom episode
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        id path string true "Symptom ID"
// @Param        request body apphealth.UpdateSymptomRequest true "Symptom details"
// @Success      200 {object} APIResponse[apphealth.SymptomResponse]
// @Router       /health/symptoms/{id} [put]
func (h *SymptomHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid symptom ID")
		return
	}

	var req apphealth.UpdateSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.symptomService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a symptom episode
// @Tags         health
// @Param        id path string true "Symptom ID"
// @Success      204
// @Router       /health/symptoms/{id} [delete]
func (h *SymptomHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid symptom ID")
		return
	}

	if err := h.symptomService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
