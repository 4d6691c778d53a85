package shared

import (
	"math"
	"net/url"
	"strconv"

	"github.com/voltmart/voltmart/internal/platform/httpx"
)

const (
	// DefaultPageSize is applied when a list request omits the limit.
	DefaultPageSize = 20
	// MaxPageSize caps the rows returned by any list endpoint.
	MaxPageSize = 100
)

// Pagination contains metadata for paginated listings.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalCount      int  `json:"totalCount"`
	Limit           int  `json:"limit"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewPagination computes pagination metadata.
func NewPagination(page, limit, total int) Pagination {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalCount:      total,
		Limit:           limit,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.Limit
}

// ParsePageLimit extracts page and limit query parameters, applying the given
// default limit and rejecting out-of-range values.
func ParsePageLimit(q url.Values, defaultLimit int) (page, limit int, err error) {
	page = 1
	if raw := q.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, httpx.Validationf("Invalid page number")
		}
	}

	limit = defaultLimit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxPageSize {
			return 0, 0, httpx.Validationf("Invalid limit. Must be between 1 and %d", MaxPageSize)
		}
	}
	return page, limit, nil
}
