package financial

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/financial"
)

// SavingsService handles savings goals
type SavingsService struct {
	goalRepo financial.SavingsGoalRepository
}

// NewSavingsService creates a new savings service
func NewSavingsService(goalRepo financial.SavingsGoalRepository) *SavingsService {
	return &SavingsService{goalRepo: goalRepo}
}

// Create adds a new savings goal
func (s *SavingsService) Create(ctx context.Context, userID uuid.UUID, req CreateSavingsGoalRequest) (*SavingsGoalResponse, error) {
	goal, err := financial.NewSavingsGoal(userID, req.Name, req.TargetAmount, req.TargetDate)
	if err != nil {
		return nil, err
	}
	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return nil, err
	}
	resp := ToSavingsGoalResponse(goal)
	return &resp, nil
}

// List returns all savings goals for a user
func (s *SavingsService) List(ctx context.Context, userID uuid.UUID) ([]SavingsGoalResponse, error) {
	goals, err := s.goalRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]SavingsGoalResponse, len(goals))
	for i := range goals {
		out[i] = ToSavingsGoalResponse(&goals[i])
	}
	return out, nil
}

// Contribute adds money to a savings goal
func (s *SavingsService) Contribute(ctx context.Context, userID, id uuid.UUID, req ContributeRequest) (*SavingsGoalResponse, error) {
	goal, err := s.goalRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := goal.Contribute(req.Amount); err != nil {
		return nil, err
	}
	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return nil, err
	}
	resp := ToSavingsGoalResponse(goal)
	return &resp, nil
}

// Update replaces a goal's fields
func (s *SavingsService) Update(ctx context.Context, userID, id uuid.UUID, req CreateSavingsGoalRequest) (*SavingsGoalResponse, error) {
	goal, err := s.goalRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := goal.Update(req.Name, req.TargetAmount, goal.CurrentAmount, req.TargetDate); err != nil {
		return nil, err
	}
	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return nil, err
	}
	resp := ToSavingsGoalResponse(goal)
	return &resp, nil
}

// Delete removes a savings goal
func (s *SavingsService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.goalRepo.DeleteForUser(ctx, userID, id)
}
