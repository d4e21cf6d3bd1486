package financial

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// InvestmentKind classifies an investment holding
type InvestmentKind string

const (
	InvestmentKindStocks     InvestmentKind = "stocks"
	InvestmentKindBonds      InvestmentKind = "bonds"
	InvestmentKindIndexFund  InvestmentKind = "index_fund"
	InvestmentKindRetirement InvestmentKind = "retirement"
	InvestmentKindCrypto     InvestmentKind = "crypto"
	InvestmentKindRealEstate InvestmentKind = "real_estate"
	InvestmentKindOther      InvestmentKind = "other"
)

// Investment is a holding with cost basis and current value
type Investment struct {
	shared.UserAggregateRoot
	Name           string          `gorm:"type:varchar(100);not null"`
	Kind           InvestmentKind  `gorm:"type:varchar(20);not null;default:'other'"`
	InvestedAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CurrentValue   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (Investment) TableName() string {
	return "investments"
}

// NewInvestment creates a validated investment record
func NewInvestment(userID uuid.UUID, name string, kind InvestmentKind, invested, currentValue decimal.Decimal) (*Investment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Investment name cannot be empty")
	}
	if kind == "" {
		kind = InvestmentKindOther
	}
	if err := validateInvestmentKind(kind); err != nil {
		return nil, err
	}
	if invested.IsNegative() || currentValue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Investment amounts cannot be negative")
	}

	return &Investment{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		Name:              name,
		Kind:              kind,
		InvestedAmount:    invested,
		CurrentValue:      currentValue,
	}, nil
}

// Update replaces the mutable fields of an investment
func (i *Investment) Update(name string, kind InvestmentKind, invested, currentValue decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Investment name cannot be empty")
	}
	if err := validateInvestmentKind(kind); err != nil {
		return err
	}
	if invested.IsNegative() || currentValue.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Investment amounts cannot be negative")
	}
	i.Name = name
	i.Kind = kind
	i.InvestedAmount = invested
	i.CurrentValue = currentValue
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// Return gives absolute gain or loss against cost basis
func (i *Investment) Return() decimal.Decimal {
	return i.CurrentValue.Sub(i.InvestedAmount)
}

func validateInvestmentKind(kind InvestmentKind) error {
	switch kind {
	case InvestmentKindStocks, InvestmentKindBonds, InvestmentKindIndexFund, InvestmentKindRetirement, InvestmentKindCrypto, InvestmentKindRealEstate, InvestmentKindOther:
		return nil
	}
	return shared.NewDomainError("INVALID_KIND", "Unknown investment kind")
}
