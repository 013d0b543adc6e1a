package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"adminkit/internal/shared/constants"
)

// PageParams holds normalized pagination parameters.
type PageParams struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the current page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageParams reads page/limit from the query string with defaults
// applied and the page size capped.
func ParsePageParams(c *gin.Context) PageParams {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	limit := parseQueryInt(c, "limit", constants.DefaultPageSize)
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	return PageParams{Page: page, Limit: limit}
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages computes the page count for a total; never less than 1.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		return 1
	}
	return pages
}
