package database

import (
	"gorm.io/gorm"

	"github.com/coremade/core-hp/internal/utils"
)

// Paginate windows a query to one page. A Limit below 1 leaves the query
// unbounded so callers can pass a zero-valued window to fetch every row.
func Paginate(window utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if window.Limit < 1 {
			return db
		}
		offset := window.Offset
		if offset < 0 {
			offset = 0
		}
		return db.Offset(offset).Limit(window.Limit)
	}
}
