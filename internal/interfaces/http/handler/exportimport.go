package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	appexportimport "github.com/wellbeing/backend/internal/application/exportimport"
	"github.com/wellbeing/backend/internal/interfaces/http/dto"
)

// maxImportFileSize caps uploaded CSV and JSON files at 10MB
const maxImportFileSize = 10 * 1024 * 1024

// ExportImportHandler handles data export and import API endpoints
type ExportImportHandler struct {
	BaseHandler
	exportService *appexportimport.Service
}

// NewExportImportHandler creates a new ExportImportHandler
func NewExportImportHandler(exportService *appexportimport.Service) *ExportImportHandler {
	return &ExportImportHandler{exportService: exportService}
}

// Template godoc
// @Summary      CSV template for an entity
// @Tags         data
// @Produce      json
// @Param        entity query string true "Entity name"
// @Success      200 {object} APIResponse[[]string]
// @Router       /data/template [get]
func (h *ExportImportHandler) Template(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entity := c.Query("entity")
	if entity == "" {
		h.BadRequest(c, "entity is required")
		return
	}

	headers, err := h.exportService.Template(entity)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"entity": entity, "headers": headers})
}

// ExportJSON godoc
// @Summary      Full account export as JSON
// @Tags         data
// @Produce      json
// @Success      200 {object} APIResponse[appexportimport.FullExport]
// @Router       /data/export/json [get]
func (h *ExportImportHandler) ExportJSON(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	dump, err := h.exportService.ExportJSON(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dump)
}

// ExportCSV godoc
// @Summary      Export one entity as a CSV download
// @Tags         data
// @Produce      text/csv
// @Param        entity query string true "Entity name"
// @Success      200 {string} string "CSV content"
// @Router       /data/export/csv [get]
func (h *ExportImportHandler) ExportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entity := c.Query("entity")
	if entity == "" {
		h.BadRequest(c, "entity is required")
		return
	}

	data, err := h.exportService.ExportCSV(c.Request.Context(), userID, entity)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	fileName := entity + "_" + time.Now().Format("20060102") + ".csv"
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ImportCSV godoc
// @Summary      Import one entity from an uploaded CSV file
// @Tags         data
// @Accept       multipart/form-data
// @Produce      json
// @Param        entity formData string true "Entity name"
// @Param        file formData file true "CSV file"
// @Success      200 {object} APIResponse[appexportimport.ImportResult]
// @Router       /data/import/csv [post]
func (h *ExportImportHandler) ImportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entity := c.PostForm("entity")
	if entity == "" {
		h.BadRequest(c, "entity is required")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > maxImportFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, "file exceeds maximum size of 10MB")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType != "" && contentType != "text/csv" && contentType != "application/octet-stream" &&
		contentType != "text/plain" && contentType != "application/vnd.ms-excel" {
		h.Error(c, http.StatusUnsupportedMediaType, dto.ErrCodeValidation, "file must be a CSV file")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImportFileSize+1))
	if err != nil {
		h.InternalError(c, "failed to read file: "+err.Error())
		return
	}

	result, err := h.exportService.ImportCSV(c.Request.Context(), userID, entity, data)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ImportJSON godoc
// @Summary      Import a previously exported JSON dump
// @Tags         data
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse[appexportimport.ImportResult]
// @Router       /data/import/json [post]
func (h *ExportImportHandler) ImportJSON(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportFileSize+1))
	if err != nil {
		h.BadRequest(c, "failed to read request body")
		return
	}
	if len(data) == 0 {
		h.BadRequest(c, "request body is required")
		return
	}
	if len(data) > maxImportFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, "payload exceeds maximum size of 10MB")
		return
	}

	result, err := h.exportService.ImportJSON(c.Request.Context(), userID, data)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// History godoc
// @Summary      List past export and import runs
// @Tags         data
// @Produce      json
// @Success      200 {object} APIResponse[[]appexportimport.ExportRecordResponse]
// @Router       /data/history [get]
func (h *ExportImportHandler) History(c *gin.Context) {
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

	resp, err := h.exportService.History(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
