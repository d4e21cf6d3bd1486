package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBudgetRepository implements financial.BudgetRepository using GORM
type GormBudgetRepository struct {
	db *gorm.DB
}

// NewGormBudgetRepository creates a new GormBudgetRepository
func NewGormBudgetRepository(db *gorm.DB) *GormBudgetRepository {
	return &GormBudgetRepository{db: db}
}

// FindByIDForUser finds a budget by ID for a user
func (r *GormBudgetRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*financial.Budget, error) {
	var budget financial.Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &budget, nil
}

// FindByMonth finds all budgets for one YYYY-MM month
func (r *GormBudgetRepository) FindByMonth(ctx context.Context, userID uuid.UUID, month string) ([]financial.Budget, error) {
	var budgets []financial.Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

// FindByCategoryAndMonth finds the single budget row for a category/month
func (r *GormBudgetRepository) FindByCategoryAndMonth(ctx context.Context, userID uuid.UUID, category, month string) (*financial.Budget, error) {
	var budget financial.Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ? AND month = ?", userID, category, month).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &budget, nil
}

// FindAllForUser finds budgets for a user matching the filter
func (r *GormBudgetRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]financial.Budget, error) {
	var budgets []financial.Budget
	query := r.db.WithContext(ctx).
		Model(&financial.Budget{}).
		Where("user_id = ?", userID)
	if month, ok := filter.Filters["month"]; ok {
		query = query.Where("month = ?", month)
	}
	query = applyFilter(query, filter, CommonSortFields, "created_at")

	if err := query.Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

// Save creates or updates a budget
func (r *GormBudgetRepository) Save(ctx context.Context, budget *financial.Budget) error {
	return r.db.WithContext(ctx).Save(budget).Error
}

// DeleteForUser deletes a budget owned by the user
func (r *GormBudgetRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&financial.Budget{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
