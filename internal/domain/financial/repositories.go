package financial

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// TransactionRepository defines the interface for transaction persistence
type TransactionRepository interface {
	// FindByIDForUser finds a transaction by ID for a user
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)

	// FindAllForUser finds transactions for a user matching the filter
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Transaction, error)

	// FindInRange finds transactions with occurred_on in [from, to)
	FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Transaction, error)

	// FindByCategoryInRange finds transactions for one category in [from, to)
	FindByCategoryInRange(ctx context.Context, userID uuid.UUID, category string, from, to time.Time) ([]Transaction, error)

	// Save creates or updates a transaction
	Save(ctx context.Context, tx *Transaction) error

	// DeleteForUser deletes a transaction owned by the user
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error

	// CountForUser counts transactions for a user matching the filter
	CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error)
}

// BudgetRepository defines the interface for budget persistence
type BudgetRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Budget, error)

	// FindByMonth finds all budgets for one YYYY-MM month
	FindByMonth(ctx context.Context, userID uuid.UUID, month string) ([]Budget, error)

	// FindByCategoryAndMonth finds the single budget row for a category/month
	FindByCategoryAndMonth(ctx context.Context, userID uuid.UUID, category, month string) (*Budget, error)

	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Budget, error)
	Save(ctx context.Context, budget *Budget) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// DebtRepository defines the interface for debt persistence
type DebtRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Debt, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]Debt, error)

	// FindOutstanding finds debts with balance > 0
	FindOutstanding(ctx context.Context, userID uuid.UUID) ([]Debt, error)

	Save(ctx context.Context, debt *Debt) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// SavingsGoalRepository defines the interface for savings goal persistence
type SavingsGoalRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*SavingsGoal, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]SavingsGoal, error)
	Save(ctx context.Context, goal *SavingsGoal) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// InvestmentRepository defines the interface for investment persistence
type InvestmentRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Investment, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]Investment, error)
	Save(ctx context.Context, investment *Investment) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}
