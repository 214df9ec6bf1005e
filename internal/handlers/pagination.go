// internal/handlers/pagination.go
package handlers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// pageParams reads and clamps the "page" and "limit" query parameters.
// page is clamped to >= 1; limit falls back to DefaultPageSize and is capped
// at MaxPageSize.
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.Query("limit"))
	switch {
	case limit > MaxPageSize:
		limit = MaxPageSize
	case limit <= 0:
		limit = DefaultPageSize
	}
	return page, limit
}

// Paginate is a GORM scope applying offset and limit from the request.
func Paginate(c *gin.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page, limit := pageParams(c)
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

// TotalPages derives the page count for a paginated response.
func TotalPages(totalRows int64, limit int) int {
	if totalRows <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalRows) / float64(limit)))
}

// listResponse builds the standard list envelope. The entity collection is
// keyed by its plural name so every screen can read its own field, and the
// total drives the client's pagination controls.
func listResponse(c *gin.Context, key string, data interface{}, totalRows int64) gin.H {
	page, limit := pageParams(c)
	return gin.H{
		"success":    true,
		key:          data,
		"total":      totalRows,
		"totalPages": TotalPages(totalRows, limit),
		"page":       page,
		"limit":      limit,
	}
}
