package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSavingsGoalRepository implements financial.SavingsGoalRepository using GORM
type GormSavingsGoalRepository struct {
	db *gorm.DB
}

// NewGormSavingsGoalRepository creates a new GormSavingsGoalRepository
func NewGormSavingsGoalRepository(db *gorm.DB) *GormSavingsGoalRepository {
	return &GormSavingsGoalRepository{db: db}
}

// FindByIDForUser finds a savings goal by ID for a user
func (r *GormSavingsGoalRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*financial.SavingsGoal, error) {
	var goal financial.SavingsGoal
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// FindAllForUser finds all savings goals for a user
func (r *GormSavingsGoalRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]financial.SavingsGoal, error) {
	var goals []financial.SavingsGoal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// Save creates or updates a savings goal
func (r *GormSavingsGoalRepository) Save(ctx context.Context, goal *financial.SavingsGoal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

// DeleteForUser deletes a savings goal owned by the user
func (r *GormSavingsGoalRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&financial.SavingsGoal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
