package persistence

import (
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyFilter applies pagination and whitelisted ordering from a shared.Filter.
// Each repository passes its own allowed sort fields and default column.
func applyFilter(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool, defaultOrder string) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	field := ValidateSortField(filter.OrderBy, allowedFields, defaultOrder)
	dir := ValidateSortOrder(filter.OrderDir)
	return query.Order(field + " " + dir)
}
