package financial

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wellbeing/backend/internal/domain/shared"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Budget is a monthly spending limit for one category.
// Month is stored as "YYYY-MM"; one row per (user, category, month).
type Budget struct {
	shared.UserAggregateRoot
	Category     string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budget_user_cat_month,priority:2"`
	Month        string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_user_cat_month,priority:3;index"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (Budget) TableName() string {
	return "budgets"
}

// NewBudget creates a validated budget row
func NewBudget(userID uuid.UUID, category, month string, limit decimal.Decimal) (*Budget, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Budget category cannot be empty")
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	if limit.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Monthly limit must be positive")
	}

	return &Budget{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		Category:          category,
		Month:             month,
		MonthlyLimit:      limit,
	}, nil
}

// UpdateLimit replaces the monthly limit
func (b *Budget) UpdateLimit(limit decimal.Decimal) error {
	if limit.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Monthly limit must be positive")
	}
	b.MonthlyLimit = limit
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// CurrentMonth returns the "YYYY-MM" key for now
func CurrentMonth() string {
	return time.Now().Format("2006-01")
}

func validateMonth(month string) error {
	if !monthPattern.MatchString(month) {
		return shared.NewDomainError("INVALID_MONTH", "Month must be in YYYY-MM format")
	}
	return nil
}
