// Package errors provides the application-level error taxonomy.
// Handlers map AppError values to HTTP status codes and the stable
// {success:false, message} response envelope.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeBadRequest   ErrorType = "bad_request"
	ErrorTypeInternal     ErrorType = "internal_error"
)

// AppError carries an error classification, a client-safe message and the
// HTTP status it maps to.
type AppError struct {
	Type    ErrorType
	Message string
	Code    int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newError(t ErrorType, code int, message string) *AppError {
	return &AppError{Type: t, Message: message, Code: code}
}

func NewValidationError(message string) *AppError {
	return newError(ErrorTypeValidation, http.StatusBadRequest, message)
}

func NewNotFoundError(message string) *AppError {
	return newError(ErrorTypeNotFound, http.StatusNotFound, message)
}

func NewConflictError(message string) *AppError {
	return newError(ErrorTypeConflict, http.StatusConflict, message)
}

func NewUnauthorizedError(message string) *AppError {
	return newError(ErrorTypeUnauthorized, http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *AppError {
	return newError(ErrorTypeForbidden, http.StatusForbidden, message)
}

func NewBadRequestError(message string) *AppError {
	return newError(ErrorTypeBadRequest, http.StatusBadRequest, message)
}

func NewInternalError(message string) *AppError {
	return newError(ErrorTypeInternal, http.StatusInternalServerError, message)
}

// GetAppError extracts an AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

func IsConflictError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConflict
}

func IsUnauthorizedError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeUnauthorized
}

// IsDuplicateError reports whether err is a database unique-key violation.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	// MySQL
	if strings.Contains(msg, "Duplicate entry") {
		return true
	}
	// SQLite
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return true
	}
	return false
}
