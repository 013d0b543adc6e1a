package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"adminkit/internal/shared/errors"
)

// parseUintParam reads a positive integer path parameter.
func parseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("Invalid %s parameter", name))
	}
	return uint(id), nil
}
