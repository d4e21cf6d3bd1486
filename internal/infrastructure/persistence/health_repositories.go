package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMetricRepository implements health.MetricRepository using GORM
type GormMetricRepository struct {
	db *gorm.DB
}

// NewGormMetricRepository creates a new GormMetricRepository
func NewGormMetricRepository(db *gorm.DB) *GormMetricRepository {
	return &GormMetricRepository{db: db}
}

// FindByIDForUser finds a metric by ID for a user
func (r *GormMetricRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*health.Metric, error) {
	var m health.Metric
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindAllForUser finds metrics for a user matching the filter
func (r *GormMetricRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]health.Metric, error) {
	var metrics []health.Metric
	query := r.db.WithContext(ctx).
		Model(&health.Metric{}).
		Where("user_id = ?", userID)
	if metricType, ok := filter.Filters["metric_type"]; ok {
		query = query.Where("metric_type = ?", metricType)
	}
	query = applyFilter(query, filter, MetricSortFields, "recorded_at")

	if err := query.Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

// FindByTypeInRange finds metrics of one type recorded in [from, to)
func (r *GormMetricRepository) FindByTypeInRange(ctx context.Context, userID uuid.UUID, metricType health.MetricType, from, to time.Time) ([]health.Metric, error) {
	var metrics []health.Metric
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND metric_type = ? AND recorded_at >= ? AND recorded_at < ?", userID, metricType, from, to).
		Order("recorded_at ASC").
		Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

// FindLatestByType finds the most recent metric of one type
func (r *GormMetricRepository) FindLatestByType(ctx context.Context, userID uuid.UUID, metricType health.MetricType) (*health.Metric, error) {
	var m health.Metric
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND metric_type = ?", userID, metricType).
		Order("recorded_at DESC").
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Save creates or updates a metric
func (r *GormMetricRepository) Save(ctx context.Context, metric *health.Metric) error {
	return r.db.WithContext(ctx).Save(metric).Error
}

// DeleteForUser deletes a metric owned by the user
func (r *GormMetricRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return deleteForUser(ctx, r.db, userID, id, &health.Metric{})
}

// GormExerciseRepository implements health.ExerciseRepository using GORM
type GormExerciseRepository struct {
	db *gorm.DB
}

// NewGormExerciseRepository creates a new GormExerciseRepository
func NewGormExerciseRepository(db *gorm.DB) *GormExerciseRepository {
	return &GormExerciseRepository{db: db}
}

// FindByIDForUser finds an exercise by ID for a user
func (r *GormExerciseRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*health.Exercise, error) {
	var e health.Exercise
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

// FindAllForUser finds exercises for a user matching the filter
func (r *GormExerciseRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]health.Exercise, error) {
	var items []health.Exercise
	query := r.db.WithContext(ctx).
		Model(&health.Exercise{}).
		Where("user_id = ?", userID)
	if exType, ok := filter.Filters["exercise_type"]; ok {
		query = query.Where("exercise_type = ?", exType)
	}
	query = applyFilter(query, filter, CommonSortFields, "created_at")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindInRange finds exercises performed in [from, to)
func (r *GormExerciseRepository) FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]health.Exercise, error) {
	var items []health.Exercise
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND performed_at >= ? AND performed_at < ?", userID, from, to).
		Order("performed_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates an exercise
func (r *GormExerciseRepository) Save(ctx context.Context, exercise *health.Exercise) error {
	return r.db.WithContext(ctx).Save(exercise).Error
}

// DeleteForUser deletes an exercise owned by the user
func (r *GormExerciseRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return deleteForUser(ctx, r.db, userID, id, &health.Exercise{})
}

// GormNutritionRepository implements health.NutritionRepository using GORM
type GormNutritionRepository struct {
	db *gorm.DB
}

// NewGormNutritionRepository creates a new GormNutritionRepository
func NewGormNutritionRepository(db *gorm.DB) *GormNutritionRepository {
	return &GormNutritionRepository{db: db}
}

// FindByIDForUser finds a nutrition entry by ID for a user
func (r *GormNutritionRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*health.NutritionEntry, error) {
	var n health.NutritionEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// FindAllForUser finds nutrition entries for a user matching the filter
func (r *GormNutritionRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]health.NutritionEntry, error) {
	var items []health.NutritionEntry
	query := r.db.WithContext(ctx).
		Model(&health.NutritionEntry{}).
		Where("user_id = ?", userID)
	if mealType, ok := filter.Filters["meal_type"]; ok {
		query = query.Where("meal_type = ?", mealType)
	}
	query = applyFilter(query, filter, CommonSortFields, "created_at")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindInRange finds nutrition entries eaten in [from, to)
func (r *GormNutritionRepository) FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]health.NutritionEntry, error) {
	var items []health.NutritionEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, from, to).
		Order("eaten_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a nutrition entry
func (r *GormNutritionRepository) Save(ctx context.Context, entry *health.NutritionEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// DeleteForUser deletes a nutrition entry owned by the user
func (r *GormNutritionRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return deleteForUser(ctx, r.db, userID, id, &health.NutritionEntry{})
}

// GormSleepRepository implements health.SleepRepository using GORM
type GormSleepRepository struct {
	db *gorm.DB
}

// NewGormSleepRepository creates a new GormSleepRepository
func NewGormSleepRepository(db *gorm.DB) *GormSleepRepository {
	return &GormSleepRepository{db: db}
}

// FindByIDForUser finds a sleep record by ID for a user
func (r *GormSleepRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*health.SleepRecord, error) {
	var s health.SleepRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAllForUser finds sleep records for a user matching the filter
func (r *GormSleepRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]health.SleepRecord, error) {
	var items []health.SleepRecord
	query := r.db.WithContext(ctx).
		Model(&health.SleepRecord{}).
		Where("user_id = ?", userID)
	query = applyFilter(query, filter, CommonSortFields, "created_at")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindInRange finds sleep records with bedtime in [from, to)
func (r *GormSleepRepository) FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]health.SleepRecord, error) {
	var items []health.SleepRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND bedtime >= ? AND bedtime < ?", userID, from, to).
		Order("bedtime ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a sleep record
func (r *GormSleepRepository) Save(ctx context.Context, record *health.SleepRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// DeleteForUser deletes a sleep record owned by the user
func (r *GormSleepRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return deleteForUser(ctx, r.db, userID, id, &health.SleepRecord{})
}

// GormSymptomRepository implements health.SymptomRepository using GORM
type GormSymptomRepository struct {
	db *gorm.DB
}

// NewGormSymptomRepository creates a new GormSymptomRepository
func NewGormSymptomRepository(db *gorm.DB) *GormSymptomRepository {
	return &GormSymptomRepository{db: db}
}

// FindByIDForUser finds a symptom by ID for a user
func (r *GormSymptomRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*health.Symptom, error) {
	var s health.Symptom
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAllForUser finds symptoms for a user matching the filter
func (r *GormSymptomRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]health.Symptom, error) {
	var items []health.Symptom
	query := r.db.WithContext(ctx).
		Model(&health.Symptom{}).
		Where("user_id = ?", userID)
	if name, ok := filter.Filters["name"]; ok {
		query = query.Where("name LIKE ?", "%"+name.(string)+"%")
	}
	if severity, ok := filter.Filters["severity"]; ok {
		query = query.Where("severity = ?", severity)
	}
	if active, ok := filter.Filters["active"]; ok && active == true {
		query = query.Where("ended_at IS NULL")
	}
	query = applyFilter(query, filter, SymptomSortFields, "started_at")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a symptom
func (r *GormSymptomRepository) Save(ctx context.Context, symptom *health.Symptom) error {
	return r.db.WithContext(ctx).Save(symptom).Error
}

// DeleteForUser deletes a symptom owned by the user
func (r *GormSymptomRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return deleteForUser(ctx, r.db, userID, id, &health.Symptom{})
}

// deleteForUser deletes a user-owned row of the given model type
func deleteForUser(ctx context.Context, db *gorm.DB, userID, id uuid.UUID, model any) error {
	result := db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
