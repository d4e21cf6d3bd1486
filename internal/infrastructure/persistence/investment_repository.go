package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormInvestmentRepository implements financial.InvestmentRepository using GORM
type GormInvestmentRepository struct {
	db *gorm.DB
}

// NewGormInvestmentRepository creates a new GormInvestmentRepository
func NewGormInvestmentRepository(db *gorm.DB) *GormInvestmentRepository {
	return &GormInvestmentRepository{db: db}
}

// FindByIDForUser finds an investment by ID for a user
func (r *GormInvestmentRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*financial.Investment, error) {
	var inv financial.Investment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindAllForUser finds all investments for a user
func (r *GormInvestmentRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]financial.Investment, error) {
	var invs []financial.Investment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("current_value DESC").
		Find(&invs).Error; err != nil {
		return nil, err
	}
	return invs, nil
}

// Save creates or updates an investment
func (r *GormInvestmentRepository) Save(ctx context.Context, investment *financial.Investment) error {
	return r.db.WithContext(ctx).Save(investment).Error
}

// DeleteForUser deletes an investment owned by the user
func (r *GormInvestmentRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&financial.Investment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
