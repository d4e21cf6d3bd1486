package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/identity"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// ProfileService handles profile reads and updates
type ProfileService struct {
	userRepo identity.UserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo identity.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// GetProfile returns the profile for a user
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// UpdateProfile applies partial profile updates
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if err := user.Rename(*req.DisplayName); err != nil {
			return nil, err
		}
	}

	age := user.Age
	gender := user.Gender
	heightCm := user.HeightCm
	weightKg := user.WeightKg
	level := user.ActivityLevel
	goal := user.Goal

	if req.Age != nil {
		age = *req.Age
	}
	if req.Gender != nil {
		gender = identity.Gender(*req.Gender)
	}
	if req.HeightCm != nil {
		heightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		weightKg = *req.WeightKg
	}
	if req.ActivityLevel != nil {
		level = identity.ActivityLevel(*req.ActivityLevel)
	}
	if req.Goal != nil {
		goal = identity.WeightGoal(*req.Goal)
	}

	if err := user.UpdateProfile(age, gender, heightCm, weightKg, level, goal); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// ChangePassword verifies the current password and sets a new one
func (s *ProfileService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.CheckPassword(req.CurrentPassword) {
		return shared.ErrInvalidCredentials
	}

	if err := user.ChangePassword(req.NewPassword); err != nil {
		return err
	}

	return s.userRepo.Save(ctx, user)
}
