package financial

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// suggestionWindowMonths is the lookback used for budget suggestions
const suggestionWindowMonths = 3

// BudgetService handles budgets, status and suggestions
type BudgetService struct {
	budgetRepo financial.BudgetRepository
	txRepo     financial.TransactionRepository
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgetRepo financial.BudgetRepository, txRepo financial.TransactionRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo, txRepo: txRepo}
}

// Set creates or updates the budget for a category and month
func (s *BudgetService) Set(ctx context.Context, userID uuid.UUID, req SetBudgetRequest) (*BudgetStatusResponse, error) {
	month := req.Month
	if month == "" {
		month = financial.CurrentMonth()
	}

	existing, err := s.budgetRepo.FindByCategoryAndMonth(ctx, userID, req.Category, month)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	var budget *financial.Budget
	if existing != nil {
		if err := existing.UpdateLimit(req.MonthlyLimit); err != nil {
			return nil, err
		}
		budget = existing
	} else {
		budget, err = financial.NewBudget(userID, req.Category, month, req.MonthlyLimit)
		if err != nil {
			return nil, err
		}
	}

	if err := s.budgetRepo.Save(ctx, budget); err != nil {
		return nil, err
	}

	return s.status(ctx, budget)
}

// ListStatus returns all budgets for a month with current spending
func (s *BudgetService) ListStatus(ctx context.Context, userID uuid.UUID, month string) ([]BudgetStatusResponse, error) {
	if month == "" {
		month = financial.CurrentMonth()
	}

	budgets, err := s.budgetRepo.FindByMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	out := make([]BudgetStatusResponse, 0, len(budgets))
	for i := range budgets {
		status, err := s.status(ctx, &budgets[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *status)
	}
	return out, nil
}

// Delete removes a budget
func (s *BudgetService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.budgetRepo.DeleteForUser(ctx, userID, id)
}

// status computes spending against one budget row
func (s *BudgetService) status(ctx context.Context, budget *financial.Budget) (*BudgetStatusResponse, error) {
	from, to, err := monthBounds(budget.Month)
	if err != nil {
		return nil, err
	}

	txs, err := s.txRepo.FindByCategoryInRange(ctx, budget.UserID, budget.Category, from, to)
	if err != nil {
		return nil, err
	}

	spent := decimal.Zero
	for i := range txs {
		if txs[i].Type == financial.TransactionTypeExpense {
			spent = spent.Add(txs[i].Amount)
		}
	}

	remaining := budget.MonthlyLimit.Sub(spent)
	usedPercent := 0.0
	if budget.MonthlyLimit.IsPositive() {
		usedPercent, _ = spent.Div(budget.MonthlyLimit).Mul(decimal.NewFromInt(100)).Float64()
	}

	return &BudgetStatusResponse{
		ID:           budget.ID,
		Category:     budget.Category,
		Month:        budget.Month,
		MonthlyLimit: budget.MonthlyLimit,
		Spent:        spent,
		Remaining:    remaining,
		UsedPercent:  usedPercent,
		OverBudget:   spent.GreaterThan(budget.MonthlyLimit),
	}, nil
}

// Suggestions proposes per-category budgets from the last three full
// months of spending: average * 1.1, with confidence from relative
// month-to-month variability.
func (s *BudgetService) Suggestions(ctx context.Context, userID uuid.UUID) ([]BudgetSuggestionResponse, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := monthStart.AddDate(0, -suggestionWindowMonths, 0)

	txs, err := s.txRepo.FindInRange(ctx, userID, from, monthStart)
	if err != nil {
		return nil, err
	}

	// per category, per month totals
	monthly := make(map[string]map[string]float64)
	for i := range txs {
		tx := &txs[i]
		if tx.Type != financial.TransactionTypeExpense {
			continue
		}
		month := tx.OccurredOn.Format("2006-01")
		if monthly[tx.Category] == nil {
			monthly[tx.Category] = make(map[string]float64)
		}
		amount, _ := tx.Amount.Float64()
		monthly[tx.Category][month] += amount
	}

	out := make([]BudgetSuggestionResponse, 0, len(monthly))
	for category, months := range monthly {
		total := 0.0
		for _, v := range months {
			total += v
		}
		avg := total / suggestionWindowMonths

		// population variance over the window, months with no spend count as zero
		variance := 0.0
		for _, v := range months {
			variance += (v - avg) * (v - avg)
		}
		variance += float64(suggestionWindowMonths-len(months)) * avg * avg
		variance /= suggestionWindowMonths
		stddev := math.Sqrt(variance)

		variability := 0.0
		if avg > 0 {
			variability = stddev / avg
		}

		confidence := "low"
		switch {
		case variability < 0.3:
			confidence = "high"
		case variability < 0.6:
			confidence = "medium"
		}

		out = append(out, BudgetSuggestionResponse{
			Category:       category,
			SuggestedLimit: decimal.NewFromFloat(avg * 1.1).Round(2),
			AverageSpend:   decimal.NewFromFloat(avg).Round(2),
			Confidence:     confidence,
		})
	}
	return out, nil
}

// monthBounds returns [start, end) for a YYYY-MM month
func monthBounds(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_MONTH", "Month must be in YYYY-MM format")
	}
	return start, start.AddDate(0, 1, 0), nil
}
