package health

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/identity"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// ExerciseService handles workout CRUD. Calorie estimates use the most
// recent weight measurement, falling back to the profile weight.
type ExerciseService struct {
	exerciseRepo health.ExerciseRepository
	metricRepo   health.MetricRepository
	userRepo     identity.UserRepository
}

// NewExerciseService creates a new exercise service
func NewExerciseService(exerciseRepo health.ExerciseRepository, metricRepo health.MetricRepository, userRepo identity.UserRepository) *ExerciseService {
	return &ExerciseService{exerciseRepo: exerciseRepo, metricRepo: metricRepo, userRepo: userRepo}
}

// Log records a workout. When the request carries no calorie figure and a
// body weight is known, calories are estimated from the MET table.
func (s *ExerciseService) Log(ctx context.Context, userID uuid.UUID, req LogExerciseRequest) (*ExerciseResponse, error) {
	weight := 0.0
	if req.Calories == 0 {
		weight = s.currentWeight(ctx, userID)
	}

	e, err := health.NewExercise(userID, health.ExerciseType(req.ExerciseType), req.DurationMinutes, req.Intensity, req.Calories, req.PerformedAt, req.Note, weight)
	if err != nil {
		return nil, err
	}
	if err := s.exerciseRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	return ToExerciseResponse(e), nil
}

// Get returns a single workout
func (s *ExerciseService) Get(ctx context.Context, userID, id uuid.UUID) (*ExerciseResponse, error) {
	e, err := s.exerciseRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToExerciseResponse(e), nil
}

// List returns workouts matching the filter
func (s *ExerciseService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]ExerciseResponse, error) {
	es, err := s.exerciseRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return ToExerciseResponses(es), nil
}

// Update replaces a workout's fields
func (s *ExerciseService) Update(ctx context.Context, userID, id uuid.UUID, req LogExerciseRequest) (*ExerciseResponse, error) {
	e, err := s.exerciseRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	calories := req.Calories
	if calories == 0 {
		if weight := s.currentWeight(ctx, userID); weight > 0 {
			calories = health.EstimateCalories(health.ExerciseType(req.ExerciseType), req.DurationMinutes, req.Intensity, weight)
		}
	}
	if err := e.Update(health.ExerciseType(req.ExerciseType), req.DurationMinutes, req.Intensity, calories, req.PerformedAt, req.Note); err != nil {
		return nil, err
	}
	if err := s.exerciseRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	return ToExerciseResponse(e), nil
}

// Delete removes a workout
func (s *ExerciseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.exerciseRepo.DeleteForUser(ctx, userID, id)
}

func (s *ExerciseService) currentWeight(ctx context.Context, userID uuid.UUID) float64 {
	m, err := s.metricRepo.FindLatestByType(ctx, userID, health.MetricWeight)
	if err == nil && m != nil {
		return m.Value
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return 0
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0
	}
	return user.WeightKg
}
