package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTransactionRepository implements financial.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByIDForUser finds a transaction by ID for a user
func (r *GormTransactionRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*financial.Transaction, error) {
	var tx financial.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// FindAllForUser finds transactions for a user matching the filter
func (r *GormTransactionRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]financial.Transaction, error) {
	var txs []financial.Transaction
	query := r.db.WithContext(ctx).
		Model(&financial.Transaction{}).
		Where("user_id = ?", userID)
	query = r.applySearch(query, filter)
	query = applyFilter(query, filter, TransactionSortFields, "occurred_on")

	if err := query.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindInRange finds transactions with occurred_on in [from, to)
func (r *GormTransactionRepository) FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]financial.Transaction, error) {
	var txs []financial.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_on >= ? AND occurred_on < ?", userID, from, to).
		Order("occurred_on ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindByCategoryInRange finds transactions for one category in [from, to)
func (r *GormTransactionRepository) FindByCategoryInRange(ctx context.Context, userID uuid.UUID, category string, from, to time.Time) ([]financial.Transaction, error) {
	var txs []financial.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ? AND occurred_on >= ? AND occurred_on < ?", userID, category, from, to).
		Order("occurred_on ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// Save creates or updates a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, tx *financial.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

// DeleteForUser deletes a transaction owned by the user
func (r *GormTransactionRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&financial.Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForUser counts transactions for a user matching the filter
func (r *GormTransactionRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&financial.Transaction{}).
		Where("user_id = ?", userID)
	query = r.applySearch(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTransactionRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("description ILIKE ? OR merchant ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		case "recurring":
			query = query.Where("recurring = ?", value)
		}
	}
	return query
}
