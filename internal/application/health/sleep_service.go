package health

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// SleepService handles sleep record CRUD
type SleepService struct {
	sleepRepo health.SleepRepository
}

// NewSleepService creates a new sleep service
func NewSleepService(sleepRepo health.SleepRepository) *SleepService {
	return &SleepService{sleepRepo: sleepRepo}
}

// Log records a night of sleep
func (s *SleepService) Log(ctx context.Context, userID uuid.UUID, req LogSleepRequest) (*SleepResponse, error) {
	rec, err := health.NewSleepRecord(userID, req.Bedtime, req.WakeTime, req.AwakeMinutes, req.Quality)
	if err != nil {
		return nil, err
	}
	if err := s.sleepRepo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return ToSleepResponse(rec), nil
}

// Get returns a single sleep record
func (s *SleepService) Get(ctx context.Context, userID, id uuid.UUID) (*SleepResponse, error) {
	rec, err := s.sleepRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToSleepResponse(rec), nil
}

// List returns sleep records matching the filter
func (s *SleepService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]SleepResponse, error) {
	recs, err := s.sleepRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return ToSleepResponses(recs), nil
}

// Update replaces a sleep record's fields
func (s *SleepService) Update(ctx context.Context, userID, id uuid.UUID, req LogSleepRequest) (*SleepResponse, error) {
	rec, err := s.sleepRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := rec.Update(req.Bedtime, req.WakeTime, req.AwakeMinutes, req.Quality); err != nil {
		return nil, err
	}
	if err := s.sleepRepo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return ToSleepResponse(rec), nil
}

// Delete removes a sleep record
func (s *SleepService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.sleepRepo.DeleteForUser(ctx, userID, id)
}
