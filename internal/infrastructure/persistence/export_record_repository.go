package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/exportrecord"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormExportRecordRepository implements exportrecord.Repository using GORM
type GormExportRecordRepository struct {
	db *gorm.DB
}

// NewGormExportRecordRepository creates a new GormExportRecordRepository
func NewGormExportRecordRepository(db *gorm.DB) *GormExportRecordRepository {
	return &GormExportRecordRepository{db: db}
}

// FindAllForUser finds export records for a user matching the filter
func (r *GormExportRecordRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]exportrecord.ExportRecord, error) {
	var items []exportrecord.ExportRecord
	query := r.db.WithContext(ctx).
		Model(&exportrecord.ExportRecord{}).
		Where("user_id = ?", userID)
	if direction, ok := filter.Filters["direction"]; ok {
		query = query.Where("direction = ?", direction)
	}
	query = applyFilter(query, filter, CommonSortFields, "created_at")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates an export record
func (r *GormExportRecordRepository) Save(ctx context.Context, record *exportrecord.ExportRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}
