package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDebtRepository implements financial.DebtRepository using GORM
type GormDebtRepository struct {
	db *gorm.DB
}

// NewGormDebtRepository creates a new GormDebtRepository
func NewGormDebtRepository(db *gorm.DB) *GormDebtRepository {
	return &GormDebtRepository{db: db}
}

// FindByIDForUser finds a debt by ID for a user
func (r *GormDebtRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*financial.Debt, error) {
	var debt financial.Debt
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &debt, nil
}

// FindAllForUser finds all debts for a user
func (r *GormDebtRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]financial.Debt, error) {
	var debts []financial.Debt
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("balance DESC").
		Find(&debts).Error; err != nil {
		return nil, err
	}
	return debts, nil
}

// FindOutstanding finds debts with balance > 0
func (r *GormDebtRepository) FindOutstanding(ctx context.Context, userID uuid.UUID) ([]financial.Debt, error) {
	var debts []financial.Debt
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND balance > 0", userID).
		Order("balance DESC").
		Find(&debts).Error; err != nil {
		return nil, err
	}
	return debts, nil
}

// Save creates or updates a debt
func (r *GormDebtRepository) Save(ctx context.Context, debt *financial.Debt) error {
	return r.db.WithContext(ctx).Save(debt).Error
}

// DeleteForUser deletes a debt owned by the user
func (r *GormDebtRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&financial.Debt{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
