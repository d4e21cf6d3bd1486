package health

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// NutritionService handles meal CRUD
type NutritionService struct {
	nutritionRepo health.NutritionRepository
}

// NewNutritionService creates a new nutrition service
func NewNutritionService(nutritionRepo health.NutritionRepository) *NutritionService {
	return &NutritionService{nutritionRepo: nutritionRepo}
}

// Log records a meal
func (s *NutritionService) Log(ctx context.Context, userID uuid.UUID, req LogMealRequest) (*NutritionResponse, error) {
	n, err := health.NewNutritionEntry(userID, health.MealType(req.MealType), req.Description, req.Calories, req.ProteinG, req.CarbsG, req.FatG, req.EatenAt)
	if err != nil {
		return nil, err
	}
	if err := s.nutritionRepo.Save(ctx, n); err != nil {
		return nil, err
	}
	return ToNutritionResponse(n), nil
}

// Get returns a single meal entry
func (s *NutritionService) Get(ctx context.Context, userID, id uuid.UUID) (*NutritionResponse, error) {
	n, err := s.nutritionRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToNutritionResponse(n), nil
}

// List returns meal entries matching the filter
func (s *NutritionService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]NutritionResponse, error) {
	ns, err := s.nutritionRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return ToNutritionResponses(ns), nil
}

// Update replaces a meal entry's fields
func (s *NutritionService) Update(ctx context.Context, userID, id uuid.UUID, req LogMealRequest) (*NutritionResponse, error) {
	n, err := s.nutritionRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := n.Update(health.MealType(req.MealType), req.Description, req.Calories, req.ProteinG, req.CarbsG, req.FatG, req.EatenAt); err != nil {
		return nil, err
	}
	if err := s.nutritionRepo.Save(ctx, n); err != nil {
		return nil, err
	}
	return ToNutritionResponse(n), nil
}

// Delete removes a meal entry
func (s *NutritionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.nutritionRepo.DeleteForUser(ctx, userID, id)
}
