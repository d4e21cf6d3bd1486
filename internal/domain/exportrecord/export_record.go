package exportrecord

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// Direction distinguishes exports from imports
type Direction string

const (
	DirectionExport Direction = "export"
	DirectionImport Direction = "import"
)

// Format is the serialization format of a run
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ExportRecord logs one export or import run for auditability
type ExportRecord struct {
	shared.UserAggregateRoot
	Direction  Direction `gorm:"type:varchar(10);not null;index"`
	Format     Format    `gorm:"type:varchar(10);not null"`
	Entity     string    `gorm:"type:varchar(50);not null"` // entity name or "all"
	RowCount   int       `gorm:"not null;default:0"`
	ErrorCount int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ExportRecord) TableName() string {
	return "export_records"
}

// New creates an export/import log entry
func New(userID uuid.UUID, direction Direction, format Format, entity string, rows, errors int) *ExportRecord {
	return &ExportRecord{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		Direction:         direction,
		Format:            format,
		Entity:            entity,
		RowCount:          rows,
		ErrorCount:        errors,
	}
}

// Repository defines the interface for export record persistence
type Repository interface {
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]ExportRecord, error)
	Save(ctx context.Context, record *ExportRecord) error
}
