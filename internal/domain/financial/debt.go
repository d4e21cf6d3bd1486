package financial

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// DebtKind classifies a debt for reporting purposes
type DebtKind string

const (
	DebtKindCreditCard  DebtKind = "credit_card"
	DebtKindStudentLoan DebtKind = "student_loan"
	DebtKindMortgage    DebtKind = "mortgage"
	DebtKindAutoLoan    DebtKind = "auto_loan"
	DebtKindPersonal    DebtKind = "personal"
	DebtKindOther       DebtKind = "other"
)

// Debt is an outstanding liability with an annual interest rate in percent
type Debt struct {
	shared.UserAggregateRoot
	Name           string          `gorm:"type:varchar(100);not null"`
	Kind           DebtKind        `gorm:"type:varchar(20);not null;default:'other'"`
	Balance        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	InterestRate   decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	MinimumPayment decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (Debt) TableName() string {
	return "debts"
}

// NewDebt creates a validated debt record
func NewDebt(userID uuid.UUID, name string, kind DebtKind, balance, interestRate, minimumPayment decimal.Decimal) (*Debt, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Debt name cannot be empty")
	}
	if kind == "" {
		kind = DebtKindOther
	}
	if err := validateDebtKind(kind); err != nil {
		return nil, err
	}
	if balance.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Debt balance cannot be negative")
	}
	if interestRate.IsNegative() || interestRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_RATE", "Interest rate must be between 0 and 100 percent")
	}
	if minimumPayment.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Minimum payment cannot be negative")
	}

	return &Debt{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		Name:              name,
		Kind:              kind,
		Balance:           balance,
		InterestRate:      interestRate,
		MinimumPayment:    minimumPayment,
	}, nil
}

// Update replaces the mutable fields of a debt
func (d *Debt) Update(name string, kind DebtKind, balance, interestRate, minimumPayment decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Debt name cannot be empty")
	}
	if err := validateDebtKind(kind); err != nil {
		return err
	}
	if balance.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Debt balance cannot be negative")
	}
	if interestRate.IsNegative() || interestRate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_RATE", "Interest rate must be between 0 and 100 percent")
	}
	if minimumPayment.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Minimum payment cannot be negative")
	}

	d.Name = name
	d.Kind = kind
	d.Balance = balance
	d.InterestRate = interestRate
	d.MinimumPayment = minimumPayment
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// RecordPayment reduces the balance, flooring at zero
func (d *Debt) RecordPayment(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment must be positive")
	}
	d.Balance = d.Balance.Sub(amount)
	if d.Balance.IsNegative() {
		d.Balance = decimal.Zero
	}
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// MonthlyInterest returns one month of interest at the current balance
func (d *Debt) MonthlyInterest() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	twelve := decimal.NewFromInt(12)
	return d.Balance.Mul(d.InterestRate.Div(hundred)).Div(twelve)
}

// IsPaidOff reports whether the balance has reached zero
func (d *Debt) IsPaidOff() bool {
	return d.Balance.LessThanOrEqual(decimal.Zero)
}

func validateDebtKind(kind DebtKind) error {
	switch kind {
	case DebtKindCreditCard, DebtKindStudentLoan, DebtKindMortgage, DebtKindAutoLoan, DebtKindPersonal, DebtKindOther:
		return nil
	}
	return shared.NewDomainError("INVALID_KIND", "Unknown debt kind")
}
