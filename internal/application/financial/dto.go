package financial

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wellbeing/backend/internal/domain/financial"
)

// =============================================================================
// Transaction DTOs
// =============================================================================

// CreateTransactionRequest represents a request to record a transaction
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"max=50"`
	Description string          `json:"description" binding:"max=500"`
	Merchant    string          `json:"merchant" binding:"max=200"`
	OccurredOn  time.Time       `json:"occurred_on" binding:"required"`
	Recurring   bool            `json:"recurring"`
}

// UpdateTransactionRequest represents a transaction update
type UpdateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"max=50"`
	Description string          `json:"description" binding:"max=500"`
	Merchant    string          `json:"merchant" binding:"max=200"`
	OccurredOn  time.Time       `json:"occurred_on" binding:"required"`
	Recurring   *bool           `json:"recurring"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant"`
	OccurredOn  time.Time       `json:"occurred_on"`
	Recurring   bool            `json:"recurring"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToTransactionResponse converts a domain transaction to a response DTO
func ToTransactionResponse(t *financial.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Merchant:    t.Merchant,
		OccurredOn:  t.OccurredOn,
		Recurring:   t.Recurring,
		CreatedAt:   t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions
func ToTransactionResponses(txs []financial.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i := range txs {
		out[i] = ToTransactionResponse(&txs[i])
	}
	return out
}

// CategorizeRequest represents a categorization request
type CategorizeRequest struct {
	Description string          `json:"description" binding:"max=500"`
	Merchant    string          `json:"merchant" binding:"max=200"`
	Amount      decimal.Decimal `json:"amount"`
}

// CategorizeResponse represents a categorization suggestion
type CategorizeResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"` // merchant, keyword or default
}

// =============================================================================
// Budget DTOs
// =============================================================================

// SetBudgetRequest represents a budget upsert
type SetBudgetRequest struct {
	Category     string          `json:"category" binding:"required,max=50"`
	Month        string          `json:"month" binding:"omitempty,len=7"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" binding:"required"`
}

// BudgetStatusResponse represents a budget with current spending
type BudgetStatusResponse struct {
	ID           uuid.UUID       `json:"id"`
	Category     string          `json:"category"`
	Month        string          `json:"month"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	UsedPercent  float64         `json:"used_percent"`
	OverBudget   bool            `json:"over_budget"`
}

// BudgetSuggestionResponse represents a suggested budget for a category
type BudgetSuggestionResponse struct {
	Category       string          `json:"category"`
	SuggestedLimit decimal.Decimal `json:"suggested_limit"`
	AverageSpend   decimal.Decimal `json:"average_spend"`
	Confidence     string          `json:"confidence"` // high, medium or low
}

// =============================================================================
// Debt DTOs
// =============================================================================

// CreateDebtRequest represents a request to track a debt
type CreateDebtRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=100"`
	Kind           string          `json:"kind" binding:"omitempty,oneof=credit_card student_loan mortgage auto_loan personal other"`
	Balance        decimal.Decimal `json:"balance" binding:"required"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
}

// DebtPaymentRequest represents a payment against a debt
type DebtPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// DebtResponse represents a debt in API responses
type DebtResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	Balance        decimal.Decimal `json:"balance"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
	PaidOff        bool            `json:"paid_off"`
}

// ToDebtResponse converts a domain debt to a response DTO
func ToDebtResponse(d *financial.Debt) DebtResponse {
	return DebtResponse{
		ID:             d.ID,
		Name:           d.Name,
		Kind:           string(d.Kind),
		Balance:        d.Balance,
		InterestRate:   d.InterestRate,
		MinimumPayment: d.MinimumPayment,
		PaidOff:        d.IsPaidOff(),
	}
}

// PayoffPlanRequest represents a payoff simulation request
type PayoffPlanRequest struct {
	Strategy     string          `json:"strategy" binding:"required,oneof=avalanche snowball"`
	ExtraPayment decimal.Decimal `json:"extra_payment"`
}

// DebtScheduleEntry represents the simulated payoff of one debt
type DebtScheduleEntry struct {
	DebtID       uuid.UUID       `json:"debt_id"`
	Name         string          `json:"name"`
	Months       int             `json:"months"`
	InterestPaid decimal.Decimal `json:"interest_paid"`
}

// PayoffPlanResponse represents a payoff simulation result
type PayoffPlanResponse struct {
	Strategy      string              `json:"strategy"`
	TotalMonths   int                 `json:"total_months"`
	TotalInterest decimal.Decimal     `json:"total_interest"`
	DebtFreeBy    string              `json:"debt_free_by,omitempty"` // YYYY-MM
	Truncated     bool                `json:"truncated"`
	Schedule      []DebtScheduleEntry `json:"schedule"`
}

// =============================================================================
// Savings goal DTOs
// =============================================================================

// CreateSavingsGoalRequest represents a request to create a savings goal
type CreateSavingsGoalRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	TargetDate   *time.Time      `json:"target_date"`
}

// ContributeRequest represents a contribution to a savings goal
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// SavingsGoalResponse represents a savings goal in API responses
type SavingsGoalResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    *time.Time      `json:"target_date,omitempty"`
	Progress      float64         `json:"progress"`
	Achieved      bool            `json:"achieved"`
}

// ToSavingsGoalResponse converts a domain savings goal to a response DTO
func ToSavingsGoalResponse(g *financial.SavingsGoal) SavingsGoalResponse {
	return SavingsGoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate,
		Progress:      g.Progress(),
		Achieved:      g.IsAchieved(),
	}
}

// =============================================================================
// Investment DTOs
// =============================================================================

// CreateInvestmentRequest represents a request to track an investment
type CreateInvestmentRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=100"`
	Kind           string          `json:"kind" binding:"omitempty,oneof=stocks bonds index_fund crypto real_estate retirement other"`
	InvestedAmount decimal.Decimal `json:"invested_amount" binding:"required"`
	CurrentValue   decimal.Decimal `json:"current_value" binding:"required"`
}

// InvestmentResponse represents an investment in API responses
type InvestmentResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	InvestedAmount decimal.Decimal `json:"invested_amount"`
	CurrentValue   decimal.Decimal `json:"current_value"`
	Return         decimal.Decimal `json:"return"`
}

// ToInvestmentResponse converts a domain investment to a response DTO
func ToInvestmentResponse(i *financial.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:             i.ID,
		Name:           i.Name,
		Kind:           string(i.Kind),
		InvestedAmount: i.InvestedAmount,
		CurrentValue:   i.CurrentValue,
		Return:         i.Return(),
	}
}

// =============================================================================
// Analytics DTOs
// =============================================================================

// CategoryBreakdown represents spend per category
type CategoryBreakdown struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  float64         `json:"percent"`
}

// SummaryResponse represents an income/expense summary over a window
type SummaryResponse struct {
	Months     int                 `json:"months"`
	Income     decimal.Decimal     `json:"income"`
	Expenses   decimal.Decimal     `json:"expenses"`
	Net        decimal.Decimal     `json:"net"`
	ByCategory []CategoryBreakdown `json:"by_category"`
}

// MonthSnapshot represents one month's income and expenses
type MonthSnapshot struct {
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Net         decimal.Decimal `json:"net"`
	SavingsRate float64         `json:"savings_rate,omitempty"`
}

// MonthOverMonth represents percent change between two months
type MonthOverMonth struct {
	IncomeChangePercent  float64 `json:"income_change_percent"`
	ExpenseChangePercent float64 `json:"expense_change_percent"`
}

// PortfolioSummary represents totals over investments or debts
type PortfolioSummary struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// DashboardResponse represents the financial dashboard view
type DashboardResponse struct {
	CurrentBalance     decimal.Decimal       `json:"current_balance"`
	NetWorth           decimal.Decimal       `json:"net_worth"`
	CurrentMonth       MonthSnapshot         `json:"current_month"`
	LastMonth          MonthSnapshot         `json:"last_month"`
	MonthOverMonth     MonthOverMonth        `json:"month_over_month"`
	SpendingByCategory []CategoryBreakdown   `json:"spending_by_category"`
	Investments        PortfolioSummary      `json:"investments"`
	Debts              PortfolioSummary      `json:"debts"`
	HealthScore        float64               `json:"financial_health_score"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// ScoreComponent represents one weighted component of the health score
type ScoreComponent struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
	Detail   string  `json:"detail,omitempty"`
}

// HealthScoreResponse represents the component financial health score
type HealthScoreResponse struct {
	Score           float64          `json:"score"`
	Grade           string           `json:"grade"`
	Components      []ScoreComponent `json:"components"`
	Recommendations []string         `json:"recommendations"`
}
