package handler

import "github.com/wellbeing/backend/internal/interfaces/http/dto"

// APIResponse is the typed response envelope referenced by the OpenAPI
// annotations. Runtime responses are built through the dto package.
// @Description Standard API response wrapper with typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// ErrorResponse documents the error envelope
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// SuccessResponse documents a bare success envelope
// @Description Simple success response without data
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// CountData documents responses that return a single count
// @Description Count data
type CountData struct {
	Count int64 `json:"count"`
}
