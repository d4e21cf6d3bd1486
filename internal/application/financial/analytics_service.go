package financial

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// healthScoreWindowDays is the lookback for the component health score
const healthScoreWindowDays = 90

// AnalyticsService computes summaries, the dashboard and health scores
type AnalyticsService struct {
	txRepo         financial.TransactionRepository
	budgetRepo     financial.BudgetRepository
	debtRepo       financial.DebtRepository
	goalRepo       financial.SavingsGoalRepository
	investmentRepo financial.InvestmentRepository
}

// NewAnalyticsService creates a new financial analytics service
func NewAnalyticsService(
	txRepo financial.TransactionRepository,
	budgetRepo financial.BudgetRepository,
	debtRepo financial.DebtRepository,
	goalRepo financial.SavingsGoalRepository,
	investmentRepo financial.InvestmentRepository,
) *AnalyticsService {
	return &AnalyticsService{
		txRepo:         txRepo,
		budgetRepo:     budgetRepo,
		debtRepo:       debtRepo,
		goalRepo:       goalRepo,
		investmentRepo: investmentRepo,
	}
}

// Summary aggregates income, expenses and category spend over the last N months
func (s *AnalyticsService) Summary(ctx context.Context, userID uuid.UUID, months int) (*SummaryResponse, error) {
	if months <= 0 {
		months = 1
	}
	if months > 60 {
		months = 60
	}

	now := time.Now()
	from := now.AddDate(0, -months, 0)

	txs, err := s.txRepo.FindInRange(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}

	income := decimal.Zero
	expenses := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for i := range txs {
		tx := &txs[i]
		switch tx.Type {
		case financial.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case financial.TransactionTypeExpense:
			expenses = expenses.Add(tx.Amount)
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		}
	}

	return &SummaryResponse{
		Months:     months,
		Income:     income,
		Expenses:   expenses,
		Net:        income.Sub(expenses),
		ByCategory: categoryBreakdown(byCategory, expenses),
	}, nil
}

// Dashboard builds the financial overview with a quick health score
func (s *AnalyticsService) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	currentTxs, err := s.txRepo.FindInRange(ctx, userID, monthStart, now)
	if err != nil {
		return nil, err
	}
	lastTxs, err := s.txRepo.FindInRange(ctx, userID, lastMonthStart, monthStart)
	if err != nil {
		return nil, err
	}

	currentIncome, currentExpenses, categorySpend := sumTransactions(currentTxs)
	lastIncome, lastExpenses, _ := sumTransactions(lastTxs)

	investments, err := s.investmentRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	investmentValue := decimal.Zero
	for i := range investments {
		investmentValue = investmentValue.Add(investments[i].CurrentValue)
	}

	debts, err := s.debtRepo.FindOutstanding(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalDebt := decimal.Zero
	for i := range debts {
		totalDebt = totalDebt.Add(debts[i].Balance)
	}

	savingsRate := 0.0
	if currentIncome.IsPositive() {
		savingsRate, _ = currentIncome.Sub(currentExpenses).Div(currentIncome).Mul(decimal.NewFromInt(100)).Float64()
	}

	invested, _ := investmentValue.Float64()
	debtTotal, _ := totalDebt.Float64()
	quickScore := clampScore(
		savingsRate*0.4 +
			minFloat(100, invested/10000*10)*0.3 +
			maxFloat(0, 100-debtTotal/1000)*0.3,
	)

	recent, err := s.txRepo.FindAllForUser(ctx, userID, shared.Filter{
		Page:     1,
		PageSize: 10,
		OrderBy:  "occurred_on",
		OrderDir: "desc",
	})
	if err != nil {
		return nil, err
	}

	netWorth := currentIncome.Sub(currentExpenses).Add(investmentValue).Sub(totalDebt)

	return &DashboardResponse{
		CurrentBalance: currentIncome.Sub(currentExpenses),
		NetWorth:       netWorth,
		CurrentMonth: MonthSnapshot{
			Income:      currentIncome,
			Expenses:    currentExpenses,
			Net:         currentIncome.Sub(currentExpenses),
			SavingsRate: savingsRate,
		},
		LastMonth: MonthSnapshot{
			Income:   lastIncome,
			Expenses: lastExpenses,
			Net:      lastIncome.Sub(lastExpenses),
		},
		MonthOverMonth: MonthOverMonth{
			IncomeChangePercent:  percentChange(lastIncome, currentIncome),
			ExpenseChangePercent: percentChange(lastExpenses, currentExpenses),
		},
		SpendingByCategory: categoryBreakdown(categorySpend, currentExpenses),
		Investments:        PortfolioSummary{Total: investmentValue, Count: len(investments)},
		Debts:              PortfolioSummary{Total: totalDebt, Count: len(debts)},
		HealthScore:        quickScore,
		RecentTransactions: ToTransactionResponses(recent),
	}, nil
}

// HealthScore computes the five-component financial health score over a
// 90 day window and grades it.
func (s *AnalyticsService) HealthScore(ctx context.Context, userID uuid.UUID) (*HealthScoreResponse, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -healthScoreWindowDays)

	txs, err := s.txRepo.FindInRange(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}

	income, expenses, categorySpend := sumTransactions(txs)

	// 1. Savings rate (0-30)
	savingsRate := 0.0
	if income.IsPositive() {
		savingsRate, _ = income.Sub(expenses).Div(income).Mul(decimal.NewFromInt(100)).Float64()
	}
	savingsScore := minFloat(30, maxFloat(0, savingsRate*1.5))

	// 2. Budget adherence (0-25), against the current month's budgets
	budgets, err := s.budgetRepo.FindByMonth(ctx, userID, financial.CurrentMonth())
	if err != nil {
		return nil, err
	}
	budgetScore := 0.0
	if len(budgets) > 0 {
		adherenceTotal := 0.0
		for i := range budgets {
			limit, _ := budgets[i].MonthlyLimit.Float64()
			if limit <= 0 {
				continue
			}
			spent, _ := categorySpend[budgets[i].Category].Float64()
			adherenceTotal += maxFloat(0, 100-spent/limit*100)
		}
		budgetScore = adherenceTotal / float64(len(budgets)) * 0.25
	}

	// 3. Goal progress (0-20), over unachieved goals
	goals, err := s.goalRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	goalScore := 0.0
	active := 0
	progressTotal := 0.0
	for i := range goals {
		if goals[i].IsAchieved() {
			continue
		}
		active++
		progressTotal += minFloat(100, goals[i].Progress()*100)
	}
	if active > 0 {
		goalScore = progressTotal / float64(active) * 0.20
	}

	// 4. Debt management (0-15), from debt-to-income ratio
	debts, err := s.debtRepo.FindOutstanding(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalDebt := decimal.Zero
	for i := range debts {
		totalDebt = totalDebt.Add(debts[i].Balance)
	}
	debtScore := 0.0
	monthlyIncome, _ := income.Div(decimal.NewFromInt(3)).Float64()
	if monthlyIncome > 0 {
		debtFloat, _ := totalDebt.Float64()
		debtToIncomeRatio := debtFloat / (monthlyIncome * 12) * 100
		debtScore = maxFloat(0, 15-debtToIncomeRatio*0.15)
	}

	// 5. Emergency fund (0-10), from a goal named "emergency"
	emergencyScore := 0.0
	for i := range goals {
		if strings.Contains(strings.ToLower(goals[i].Name), "emergency") {
			emergencyScore = minFloat(10, goals[i].Progress()*10)
			break
		}
	}

	total := savingsScore + budgetScore + goalScore + debtScore + emergencyScore

	return &HealthScoreResponse{
		Score: total,
		Grade: scoreGrade(total),
		Components: []ScoreComponent{
			{Name: "savings_rate", Score: round2(savingsScore), MaxScore: 30},
			{Name: "budget_adherence", Score: round2(budgetScore), MaxScore: 25},
			{Name: "goal_progress", Score: round2(goalScore), MaxScore: 20},
			{Name: "debt_management", Score: round2(debtScore), MaxScore: 15},
			{Name: "emergency_fund", Score: round2(emergencyScore), MaxScore: 10},
		},
		Recommendations: recommendations(savingsScore, budgetScore, goalScore, debtScore, emergencyScore),
	}, nil
}

// recommendations suggests next steps for weak score components
func recommendations(savings, budget, goal, debt, emergency float64) []string {
	var out []string
	if savings < 15 {
		out = append(out, "Increase your savings rate to at least 20% of income")
	}
	if budget == 0 {
		out = append(out, "Set up budgets for your main expense categories")
	} else if budget < 15 {
		out = append(out, "Review and adjust your budgets to match spending patterns")
	}
	if goal == 0 {
		out = append(out, "Create savings goals to stay motivated")
	} else if goal < 10 {
		out = append(out, "Focus on making consistent progress towards your goals")
	}
	if debt < 10 {
		out = append(out, "Prioritize paying down high-interest debt")
	}
	if emergency < 5 {
		out = append(out, "Build an emergency fund covering 3-6 months of expenses")
	}
	if len(out) == 0 {
		out = append(out, "Great job! Keep up your excellent financial habits")
	}
	return out
}

func scoreGrade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func sumTransactions(txs []financial.Transaction) (income, expenses decimal.Decimal, byCategory map[string]decimal.Decimal) {
	byCategory = make(map[string]decimal.Decimal)
	for i := range txs {
		tx := &txs[i]
		switch tx.Type {
		case financial.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case financial.TransactionTypeExpense:
			expenses = expenses.Add(tx.Amount)
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		}
	}
	return income, expenses, byCategory
}

func categoryBreakdown(byCategory map[string]decimal.Decimal, total decimal.Decimal) []CategoryBreakdown {
	out := make([]CategoryBreakdown, 0, len(byCategory))
	for category, amount := range byCategory {
		percent := 0.0
		if total.IsPositive() {
			percent, _ = amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
		out = append(out, CategoryBreakdown{Category: category, Amount: amount, Percent: percent})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Amount.GreaterThan(out[j].Amount) })
	return out
}

func percentChange(previous, current decimal.Decimal) float64 {
	if !previous.IsPositive() {
		return 0
	}
	change, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
	return change
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
