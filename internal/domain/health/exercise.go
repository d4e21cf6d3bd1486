package health

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// ExerciseType identifies a workout category with a known MET value
type ExerciseType string

const (
	ExerciseWalking  ExerciseType = "walking"
	ExerciseRunning  ExerciseType = "running"
	ExerciseCycling  ExerciseType = "cycling"
	ExerciseSwimming ExerciseType = "swimming"
	ExerciseStrength ExerciseType = "strength"
	ExerciseYoga     ExerciseType = "yoga"
	ExerciseSports   ExerciseType = "sports"
	ExerciseOther    ExerciseType = "other"
)

// metValues are baseline metabolic equivalents per exercise type
var metValues = map[ExerciseType]float64{
	ExerciseWalking:  3.5,
	ExerciseRunning:  9.8,
	ExerciseCycling:  7.5,
	ExerciseSwimming: 8.0,
	ExerciseStrength: 6.0,
	ExerciseYoga:     3.0,
	ExerciseSports:   7.0,
	ExerciseOther:    5.0,
}

// Exercise is one logged workout session
type Exercise struct {
	shared.UserAggregateRoot
	ExerciseType    ExerciseType `gorm:"type:varchar(20);not null;index"`
	DurationMinutes int          `gorm:"not null"`
	Intensity       int          `gorm:"not null"` // 1..10
	CaloriesBurned  float64      `gorm:"not null;default:0"`
	PerformedAt     time.Time    `gorm:"not null;index"`
	Note            string       `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Exercise) TableName() string {
	return "exercises"
}

// NewExercise creates a validated workout entry. When weightKg is known and no
// explicit calorie figure is given, calories are estimated from the MET table.
func NewExercise(userID uuid.UUID, exType ExerciseType, durationMinutes, intensity int, calories float64, performedAt time.Time, note string, weightKg float64) (*Exercise, error) {
	exType = ExerciseType(strings.ToLower(string(exType)))
	if _, ok := metValues[exType]; !ok {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown exercise type")
	}
	if durationMinutes <= 0 || durationMinutes > 24*60 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Duration must be between 1 minute and 24 hours")
	}
	if intensity < 1 || intensity > 10 {
		return nil, shared.NewDomainError("INVALID_INTENSITY", "Intensity must be between 1 and 10")
	}
	if calories < 0 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Calories cannot be negative")
	}
	if performedAt.IsZero() {
		performedAt = time.Now()
	}
	if calories == 0 && weightKg > 0 {
		calories = EstimateCalories(exType, durationMinutes, intensity, weightKg)
	}

	return &Exercise{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		ExerciseType:      exType,
		DurationMinutes:   durationMinutes,
		Intensity:         intensity,
		CaloriesBurned:    calories,
		PerformedAt:       performedAt,
		Note:              note,
	}, nil
}

// Update replaces the mutable fields of an exercise entry
func (e *Exercise) Update(exType ExerciseType, durationMinutes, intensity int, calories float64, performedAt time.Time, note string) error {
	exType = ExerciseType(strings.ToLower(string(exType)))
	if _, ok := metValues[exType]; !ok {
		return shared.NewDomainError("INVALID_TYPE", "Unknown exercise type")
	}
	if durationMinutes <= 0 || durationMinutes > 24*60 {
		return shared.NewDomainError("INVALID_DURATION", "Duration must be between 1 minute and 24 hours")
	}
	if intensity < 1 || intensity > 10 {
		return shared.NewDomainError("INVALID_INTENSITY", "Intensity must be between 1 and 10")
	}
	if calories < 0 {
		return shared.NewDomainError("INVALID_VALUE", "Calories cannot be negative")
	}
	e.ExerciseType = exType
	e.DurationMinutes = durationMinutes
	e.Intensity = intensity
	e.CaloriesBurned = calories
	if !performedAt.IsZero() {
		e.PerformedAt = performedAt
	}
	e.Note = note
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// EstimateCalories estimates energy expenditure from the MET table.
// Intensity scales the baseline MET by 0.7 + intensity*0.06, so intensity 5
// is the published value and 10 is roughly 30% above it.
func EstimateCalories(exType ExerciseType, durationMinutes, intensity int, weightKg float64) float64 {
	met, ok := metValues[exType]
	if !ok {
		met = metValues[ExerciseOther]
	}
	multiplier := 0.7 + float64(intensity)*0.06
	hours := float64(durationMinutes) / 60
	return met * multiplier * weightKg * hours
}
