package health

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// MetricRepository defines the interface for health metric persistence
type MetricRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Metric, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Metric, error)

	// FindByTypeInRange finds metrics of one type recorded in [from, to)
	FindByTypeInRange(ctx context.Context, userID uuid.UUID, metricType MetricType, from, to time.Time) ([]Metric, error)

	// FindLatestByType finds the most recent metric of each requested type
	FindLatestByType(ctx context.Context, userID uuid.UUID, metricType MetricType) (*Metric, error)

	Save(ctx context.Context, metric *Metric) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// ExerciseRepository defines the interface for exercise persistence
type ExerciseRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Exercise, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Exercise, error)
	FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Exercise, error)
	Save(ctx context.Context, exercise *Exercise) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// NutritionRepository defines the interface for nutrition persistence
type NutritionRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*NutritionEntry, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]NutritionEntry, error)
	FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]NutritionEntry, error)
	Save(ctx context.Context, entry *NutritionEntry) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// SymptomRepository defines the interface for symptom persistence
type SymptomRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Symptom, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Symptom, error)
	Save(ctx context.Context, symptom *Symptom) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// SleepRepository defines the interface for sleep record persistence
type SleepRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*SleepRecord, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]SleepRecord, error)
	FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]SleepRecord, error)
	Save(ctx context.Context, record *SleepRecord) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}
