package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminkit/internal/shared/errors"
)

// APIResponse is the stable response envelope consumed by the admin client.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Pagination describes the paging block embedded in list responses.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination builds the paging block for a list response.
func NewPagination(total int64, page, pageSize int) Pagination {
	totalPages := TotalPages(total, pageSize)
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// SuccessResponse sends a success envelope with the given status code.
func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends a failure envelope with the given status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Message: message,
	})
}

// ErrorResponseFromErr maps an error to the envelope. AppError values keep
// their status and message; anything else becomes an opaque 500 so internal
// details never leak to clients.
func ErrorResponseFromErr(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
