package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeEmailTaken))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(ErrCodeInvalidState))
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(ErrCodeTokenInvalid))
}

func TestGetHTTPStatusFieldCodes(t *testing.T) {
	// Field-level domain codes are not enumerated individually
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_AMOUNT"))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_TIMEZONE"))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("ERR_IMPORT_REQUIRED_FIELD"))
}

func TestGetHTTPStatusUnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeTokenInvalid, NormalizeErrorCode("INVALID_TOKEN"))
	assert.Equal(t, "INVALID_AMOUNT", NormalizeErrorCode("INVALID_AMOUNT"))
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound))
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a"}, 41, 2, 20)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
