package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// TransactionSortFields contains allowed sort fields for transactions
var TransactionSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"occurred_on": true,
	"amount":      true,
	"category":    true,
	"merchant":    true,
	"type":        true,
}

// MetricSortFields contains allowed sort fields for health metrics
var MetricSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"recorded_at": true,
	"metric_type": true,
	"value":       true,
}

// SymptomSortFields contains allowed sort fields for symptoms
var SymptomSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"started_at": true,
	"name":       true,
	"severity":   true,
}

// SessionSortFields contains allowed sort fields for time-based records
var SessionSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"started_at": true,
}
