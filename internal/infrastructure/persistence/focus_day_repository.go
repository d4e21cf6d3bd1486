package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/productivity"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormFocusDayRepository implements productivity.FocusDayRepository using GORM
type GormFocusDayRepository struct {
	db *gorm.DB
}

// NewGormFocusDayRepository creates a new GormFocusDayRepository
func NewGormFocusDayRepository(db *gorm.DB) *GormFocusDayRepository {
	return &GormFocusDayRepository{db: db}
}

// FindByIDForUser finds a focus day by ID for a user
func (r *GormFocusDayRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*productivity.FocusDay, error) {
	var f productivity.FocusDay
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindAllForUser finds focus days for a user matching the filter
func (r *GormFocusDayRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]productivity.FocusDay, error) {
	var items []productivity.FocusDay
	query := r.db.WithContext(ctx).
		Model(&productivity.FocusDay{}).
		Where("user_id = ?", userID)
	query = applyFilter(query, filter, CommonSortFields, "created_at")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindInRange finds records with day in [from, to)
func (r *GormFocusDayRepository) FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]productivity.FocusDay, error) {
	var items []productivity.FocusDay
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND day >= ? AND day < ?", userID, from, to).
		Order("day ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByDay finds the single record for one calendar day
func (r *GormFocusDayRepository) FindByDay(ctx context.Context, userID uuid.UUID, day time.Time) (*productivity.FocusDay, error) {
	var f productivity.FocusDay
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day.Truncate(24*time.Hour)).
		First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// Save creates or updates a focus day
func (r *GormFocusDayRepository) Save(ctx context.Context, day *productivity.FocusDay) error {
	return r.db.WithContext(ctx).Save(day).Error
}

// DeleteForUser deletes a focus day owned by the user
func (r *GormFocusDayRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return deleteForUser(ctx, r.db, userID, id, &productivity.FocusDay{})
}
