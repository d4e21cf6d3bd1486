package financial

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// SavingsGoal tracks progress toward a target amount by a target date
type SavingsGoal struct {
	shared.UserAggregateRoot
	Name          string          `gorm:"type:varchar(100);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TargetDate    *time.Time
}

// TableName returns the table name for GORM
func (SavingsGoal) TableName() string {
	return "savings_goals"
}

// NewSavingsGoal creates a validated savings goal
func NewSavingsGoal(userID uuid.UUID, name string, target decimal.Decimal, targetDate *time.Time) (*SavingsGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Goal name cannot be empty")
	}
	if target.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Target amount must be positive")
	}

	return &SavingsGoal{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		Name:              name,
		TargetAmount:      target,
		CurrentAmount:     decimal.Zero,
		TargetDate:        targetDate,
	}, nil
}

// Contribute adds to the saved amount
func (g *SavingsGoal) Contribute(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Contribution must be positive")
	}
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// Update replaces name, target and saved amount
func (g *SavingsGoal) Update(name string, target, current decimal.Decimal, targetDate *time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Goal name cannot be empty")
	}
	if target.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Target amount must be positive")
	}
	if current.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Current amount cannot be negative")
	}
	g.Name = name
	g.TargetAmount = target
	g.CurrentAmount = current
	g.TargetDate = targetDate
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// Progress returns completion as a fraction in [0,1]
func (g *SavingsGoal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	p, _ := g.CurrentAmount.Div(g.TargetAmount).Float64()
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// IsAchieved reports whether the saved amount has reached the target
func (g *SavingsGoal) IsAchieved() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}
