package utils

import (
	"math"
	"strconv"

	"github.com/coremade/core-hp/internal/constants"
	"github.com/gin-gonic/gin"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// maxPage keeps (page-1)*pageSize plus one page of rows within an int.
const maxPage = math.MaxInt / constants.MaxPageSize

// NewPaginationParams clamps page to [1, maxPage] and pageSize to at most
// MaxPageSize. A non-positive pageSize falls back to defaultSize.
func NewPaginationParams(page, pageSize, defaultSize int) PaginationParams {
	if defaultSize < 1 || defaultSize > constants.MaxPageSize {
		defaultSize = constants.DefaultPageSize
	}
	if page < constants.MinPage {
		page = constants.MinPage
	}
	if page > maxPage {
		page = maxPage
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
}

// GetPaginationParams extracts pagination parameters from the request.
// Unparseable values fall back to the defaults.
func GetPaginationParams(c *gin.Context, defaultSize int) PaginationParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = constants.MinPage
	}
	pageSize, err := strconv.Atoi(c.Query("pageSize"))
	if err != nil {
		pageSize = defaultSize
	}

	return NewPaginationParams(page, pageSize, defaultSize)
}

// Page is one page of a paginated result together with the exact total.
type Page[T any] struct {
	Items []T
	Total int64
	PaginationParams
}

// NewPage builds a Page, normalising a nil item slice to an empty one.
func NewPage[T any](items []T, total int64, params PaginationParams) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:            items,
		Total:            total,
		PaginationParams: params,
	}
}

// HasMore reports whether rows remain after this page.
func (p *Page[T]) HasMore() bool {
	return int64(p.Offset+len(p.Items)) < p.Total
}

// TotalPages returns the number of pages needed for Total rows.
func (p *Page[T]) TotalPages() int {
	if p.Limit < 1 {
		return 0
	}
	pages := int(p.Total) / p.Limit
	if int(p.Total)%p.Limit > 0 {
		pages++
	}
	return pages
}
