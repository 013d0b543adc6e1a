package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
		typ  ErrorType
	}{
		{"validation", NewValidationError("bad input"), http.StatusBadRequest, ErrorTypeValidation},
		{"not found", NewNotFoundError("missing"), http.StatusNotFound, ErrorTypeNotFound},
		{"conflict", NewConflictError("duplicate"), http.StatusConflict, ErrorTypeConflict},
		{"unauthorized", NewUnauthorizedError("no"), http.StatusUnauthorized, ErrorTypeUnauthorized},
		{"forbidden", NewForbiddenError("nope"), http.StatusForbidden, ErrorTypeForbidden},
		{"bad request", NewBadRequestError("bad"), http.StatusBadRequest, ErrorTypeBadRequest},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError, ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.typ, tt.err.Type)
		})
	}
}

func TestGetAppError_Wrapped(t *testing.T) {
	base := NewNotFoundError("session not found")
	wrapped := fmt.Errorf("lookup failed: %w", base)

	got := GetAppError(wrapped)
	assert.NotNil(t, got)
	assert.Equal(t, ErrorTypeNotFound, got.Type)
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsConflictError(wrapped))
}

func TestGetAppError_Plain(t *testing.T) {
	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.False(t, IsNotFoundError(errors.New("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("Error 1062: Duplicate entry 'a@b.c' for key 'users.email'")))
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsDuplicateError(errors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
