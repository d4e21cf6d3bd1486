package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
	"github.com/wellbeing/backend/internal/domain/wellbeing"
	"gorm.io/gorm"
)

// GormMoodEntryRepository implements wellbeing.MoodEntryRepository using GORM
type GormMoodEntryRepository struct {
	db *gorm.DB
}

// NewGormMoodEntryRepository creates a new GormMoodEntryRepository
func NewGormMoodEntryRepository(db *gorm.DB) *GormMoodEntryRepository {
	return &GormMoodEntryRepository{db: db}
}

// FindByIDForUser finds a mood entry by ID for a user
func (r *GormMoodEntryRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*wellbeing.MoodEntry, error) {
	var e wellbeing.MoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindAllForUser finds mood entries for a user matching the filter
func (r *GormMoodEntryRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]wellbeing.MoodEntry, error) {
	var items []wellbeing.MoodEntry
	query := r.db.WithContext(ctx).
		Model(&wellbeing.MoodEntry{}).
		Where("user_id = ?", userID)
	query = applyFilter(query, filter, MetricSortFields, "recorded_at")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a mood entry
func (r *GormMoodEntryRepository) Save(ctx context.Context, entry *wellbeing.MoodEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// DeleteForUser deletes a mood entry owned by the user
func (r *GormMoodEntryRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return deleteForUser(ctx, r.db, userID, id, &wellbeing.MoodEntry{})
}

// GormGoalRepository implements wellbeing.GoalRepository using GORM
type GormGoalRepository struct {
	db *gorm.DB
}

// NewGormGoalRepository creates a new GormGoalRepository
func NewGormGoalRepository(db *gorm.DB) *GormGoalRepository {
	return &GormGoalRepository{db: db}
}

// FindByIDForUser finds a goal by ID for a user
func (r *GormGoalRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*wellbeing.Goal, error) {
	var g wellbeing.Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

// FindAllForUser finds goals for a user matching the filter
func (r *GormGoalRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]wellbeing.Goal, error) {
	var items []wellbeing.Goal
	query := r.db.WithContext(ctx).
		Model(&wellbeing.Goal{}).
		Where("user_id = ?", userID)
	if completed, ok := filter.Filters["completed"]; ok {
		query = query.Where("completed = ?", completed)
	}
	query = applyFilter(query, filter, CommonSortFields, "created_at")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a goal
func (r *GormGoalRepository) Save(ctx context.Context, goal *wellbeing.Goal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

// DeleteForUser deletes a goal owned by the user
func (r *GormGoalRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return deleteForUser(ctx, r.db, userID, id, &wellbeing.Goal{})
}
