package wellbeing

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
	"github.com/wellbeing/backend/internal/domain/wellbeing"
)

// TrackingService handles mood check-ins and wellbeing goals
type TrackingService struct {
	moodRepo wellbeing.MoodEntryRepository
	goalRepo wellbeing.GoalRepository
}

// NewTrackingService creates a new tracking service
func NewTrackingService(moodRepo wellbeing.MoodEntryRepository, goalRepo wellbeing.GoalRepository) *TrackingService {
	return &TrackingService{moodRepo: moodRepo, goalRepo: goalRepo}
}

// LogMood records a mood check-in
func (s *TrackingService) LogMood(ctx context.Context, userID uuid.UUID, req LogMoodRequest) (*MoodEntryResponse, error) {
	entry, err := wellbeing.NewMoodEntry(userID, req.MoodScore, req.EnergyLevel, req.StressLevel, req.Notes, req.RecordedAt)
	if err != nil {
		return nil, err
	}
	if err := s.moodRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	return ToMoodEntryResponse(entry), nil
}

// ListMoods returns mood check-ins matching the filter
func (s *TrackingService) ListMoods(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]MoodEntryResponse, error) {
	entries, err := s.moodRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return ToMoodEntryResponses(entries), nil
}

// DeleteMood removes a mood check-in
func (s *TrackingService) DeleteMood(ctx context.Context, userID, id uuid.UUID) error {
	return s.moodRepo.DeleteForUser(ctx, userID, id)
}

// CreateGoal creates a wellbeing goal
func (s *TrackingService) CreateGoal(ctx context.Context, userID uuid.UUID, req CreateGoalRequest) (*GoalResponse, error) {
	goal, err := wellbeing.NewGoal(userID, req.Title, req.Description, req.TargetDate)
	if err != nil {
		return nil, err
	}
	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return nil, err
	}
	return ToGoalResponse(goal), nil
}

// ListGoals returns goals matching the filter
func (s *TrackingService) ListGoals(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]GoalResponse, error) {
	goals, err := s.goalRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return ToGoalResponses(goals), nil
}

// UpdateGoal replaces a goal's fields and optionally toggles completion
func (s *TrackingService) UpdateGoal(ctx context.Context, userID, id uuid.UUID, req UpdateGoalRequest) (*GoalResponse, error) {
	goal, err := s.goalRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := goal.Update(req.Title, req.Description, req.TargetDate); err != nil {
		return nil, err
	}
	if req.Completed != nil && *req.Completed != goal.Completed {
		goal.SetCompleted(*req.Completed)
	}
	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return nil, err
	}
	return ToGoalResponse(goal), nil
}

// DeleteGoal removes a goal
func (s *TrackingService) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	return s.goalRepo.DeleteForUser(ctx, userID, id)
}
