package financial

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// TransactionType distinguishes money in from money out
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Well-known transaction categories. Free-form categories are allowed, these
// are the ones the categorizer and budget suggestions understand.
const (
	CategorySalary        = "salary"
	CategoryGroceries     = "groceries"
	CategoryDining        = "dining"
	CategoryTransport     = "transport"
	CategoryHousing       = "housing"
	CategoryUtilities     = "utilities"
	CategoryEntertainment = "entertainment"
	CategoryHealthcare    = "healthcare"
	CategoryShopping      = "shopping"
	CategorySubscriptions = "subscriptions"
	CategoryTravel        = "travel"
	CategoryEducation     = "education"
	CategoryLargePurchase = "large_purchase"
	CategoryOtherIncome   = "other_income"
	CategoryOtherExpense  = "other_expense"
)

// Transaction is a single income or expense record
type Transaction struct {
	shared.UserAggregateRoot
	Type        TransactionType `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Category    string          `gorm:"type:varchar(50);not null;index"`
	Description string          `gorm:"type:varchar(500)"`
	Merchant    string          `gorm:"type:varchar(200);index"`
	OccurredOn  time.Time       `gorm:"not null;index"`
	Recurring   bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// NewTransaction creates a validated transaction
func NewTransaction(userID uuid.UUID, txType TransactionType, amount decimal.Decimal, category, description, merchant string, occurredOn time.Time) (*Transaction, error) {
	if err := validateTransactionType(txType); err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	category = normalizeCategory(category, txType)
	if occurredOn.IsZero() {
		occurredOn = time.Now()
	}

	return &Transaction{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		Type:              txType,
		Amount:            amount,
		Category:          category,
		Description:       description,
		Merchant:          strings.TrimSpace(merchant),
		OccurredOn:        occurredOn,
	}, nil
}

// Update replaces the mutable fields of a transaction
func (t *Transaction) Update(txType TransactionType, amount decimal.Decimal, category, description, merchant string, occurredOn time.Time) error {
	if err := validateTransactionType(txType); err != nil {
		return err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	t.Type = txType
	t.Amount = amount
	t.Category = normalizeCategory(category, txType)
	t.Description = description
	t.Merchant = strings.TrimSpace(merchant)
	if !occurredOn.IsZero() {
		t.OccurredOn = occurredOn
	}
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}

// Recategorize assigns a new category, keeping everything else
func (t *Transaction) Recategorize(category string) {
	t.Category = normalizeCategory(category, t.Type)
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// MarkRecurring flags the transaction as part of a recurring series
func (t *Transaction) MarkRecurring(recurring bool) {
	t.Recurring = recurring
	t.UpdatedAt = time.Now()
}

// SignedAmount returns the amount negated for expenses
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

func validateTransactionType(txType TransactionType) error {
	if txType != TransactionTypeIncome && txType != TransactionTypeExpense {
		return shared.NewDomainError("INVALID_TYPE", "Transaction type must be income or expense")
	}
	return nil
}

func normalizeCategory(category string, txType TransactionType) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		if txType == TransactionTypeIncome {
			return CategoryOtherIncome
		}
		return CategoryOtherExpense
	}
	return category
}
