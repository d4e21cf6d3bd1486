package financial

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellbeing/backend/internal/domain/financial"
)

type analyticsFixture struct {
	svc    *AnalyticsService
	txRepo *mockTransactionRepo
	budget *mockBudgetRepo
	debt   *mockDebtRepo
	goals  *mockSavingsGoalRepo
	invest *mockInvestmentRepo
	userID uuid.UUID
}

func newAnalyticsFixture() *analyticsFixture {
	f := &analyticsFixture{
		txRepo: newMockTransactionRepo(),
		budget: newMockBudgetRepo(),
		debt:   newMockDebtRepo(),
		goals:  newMockSavingsGoalRepo(),
		invest: newMockInvestmentRepo(),
		userID: uuid.New(),
	}
	f.svc = NewAnalyticsService(f.txRepo, f.budget, f.debt, f.goals, f.invest)
	return f
}

func (f *analyticsFixture) addTx(t *testing.T, txType financial.TransactionType, amount int64, category string, daysAgo int) {
	t.Helper()
	tx, err := financial.NewTransaction(
		f.userID, txType, decimal.NewFromInt(amount), category, "", "",
		time.Now().AddDate(0, 0, -daysAgo),
	)
	require.NoError(t, err)
	require.NoError(t, f.txRepo.Save(context.Background(), tx))
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture()

	f.addTx(t, financial.TransactionTypeIncome, 5000, financial.CategorySalary, 5)
	f.addTx(t, financial.TransactionTypeExpense, 1200, financial.CategoryHousing, 4)
	f.addTx(t, financial.TransactionTypeExpense, 300, financial.CategoryGroceries, 3)
	// Outside a 1-month window
	f.addTx(t, financial.TransactionTypeExpense, 999, financial.CategoryTravel, 45)

	summary, err := f.svc.Summary(ctx, f.userID, 1)
	require.NoError(t, err)

	assert.True(t, summary.Income.Equal(decimal.NewFromInt(5000)))
	assert.True(t, summary.Expenses.Equal(decimal.NewFromInt(1500)))
	assert.True(t, summary.Net.Equal(decimal.NewFromInt(3500)))
	require.Len(t, summary.ByCategory, 2)
	// Sorted by amount descending
	assert.Equal(t, financial.CategoryHousing, summary.ByCategory[0].Category)
	assert.InDelta(t, 80.0, summary.ByCategory[0].Percent, 0.01)
}

func TestHealthScoreComponents(t *testing.T) {
	ctx := context.Background()

	t.Run("empty data scores zero with F grade", func(t *testing.T) {
		f := newAnalyticsFixture()
		score, err := f.svc.HealthScore(ctx, f.userID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, score.Score)
		assert.Equal(t, "F", score.Grade)
		assert.Len(t, score.Components, 5)
		assert.NotEmpty(t, score.Recommendations)
	})

	t.Run("savings rate component caps at 30", func(t *testing.T) {
		f := newAnalyticsFixture()
		// 100% savings rate: 100*1.5 capped at 30
		f.addTx(t, financial.TransactionTypeIncome, 9000, financial.CategorySalary, 10)

		score, err := f.svc.HealthScore(ctx, f.userID)
		require.NoError(t, err)
		assert.Equal(t, 30.0, score.Components[0].Score)
	})

	t.Run("budget adherence rewards staying under limit", func(t *testing.T) {
		f := newAnalyticsFixture()
		f.addTx(t, financial.TransactionTypeIncome, 6000, financial.CategorySalary, 10)
		f.addTx(t, financial.TransactionTypeExpense, 200, financial.CategoryGroceries, 5)

		budget, err := financial.NewBudget(f.userID, financial.CategoryGroceries, financial.CurrentMonth(), decimal.NewFromInt(400))
		require.NoError(t, err)
		require.NoError(t, f.budget.Save(ctx, budget))

		score, err := f.svc.HealthScore(ctx, f.userID)
		require.NoError(t, err)
		// 50% adherence left: (100-50)*0.25 = 12.5
		assert.InDelta(t, 12.5, score.Components[1].Score, 0.01)
	})

	t.Run("emergency fund goal", func(t *testing.T) {
		f := newAnalyticsFixture()
		goal, err := financial.NewSavingsGoal(f.userID, "Emergency Fund", decimal.NewFromInt(10000), nil)
		require.NoError(t, err)
		require.NoError(t, goal.Contribute(decimal.NewFromInt(5000)))
		require.NoError(t, f.goals.Save(ctx, goal))

		score, err := f.svc.HealthScore(ctx, f.userID)
		require.NoError(t, err)
		// 50% funded: 5 of 10 points
		assert.InDelta(t, 5.0, score.Components[4].Score, 0.01)
	})

	t.Run("grades", func(t *testing.T) {
		assert.Equal(t, "A+", scoreGrade(95))
		assert.Equal(t, "A", scoreGrade(85))
		assert.Equal(t, "B", scoreGrade(72))
		assert.Equal(t, "C", scoreGrade(65))
		assert.Equal(t, "D", scoreGrade(51))
		assert.Equal(t, "F", scoreGrade(49))
	})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture()

	f.addTx(t, financial.TransactionTypeIncome, 4000, financial.CategorySalary, 0)
	f.addTx(t, financial.TransactionTypeExpense, 1000, financial.CategoryHousing, 0)

	investment, err := financial.NewInvestment(f.userID, "Index fund", financial.InvestmentKindIndexFund,
		decimal.NewFromInt(9000), decimal.NewFromInt(10000))
	require.NoError(t, err)
	require.NoError(t, f.invest.Save(ctx, investment))

	dash, err := f.svc.Dashboard(ctx, f.userID)
	require.NoError(t, err)

	assert.True(t, dash.CurrentBalance.Equal(decimal.NewFromInt(3000)))
	assert.True(t, dash.CurrentMonth.Income.Equal(decimal.NewFromInt(4000)))
	assert.InDelta(t, 75.0, dash.CurrentMonth.SavingsRate, 0.01)
	assert.Equal(t, 1, dash.Investments.Count)
	assert.True(t, dash.NetWorth.Equal(decimal.NewFromInt(13000)))

	// 75*0.4 + (10000/10000*10)*0.3 + 100*0.3 = 30 + 3 + 30
	assert.InDelta(t, 63.0, dash.HealthScore, 0.01)
	assert.Len(t, dash.RecentTransactions, 2)
}

func TestBudgetSuggestions(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture()
	budgetSvc := NewBudgetService(f.budget, f.txRepo)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	// Steady spending in each of the three prior months
	for i := 1; i <= 3; i++ {
		tx, err := financial.NewTransaction(
			f.userID, financial.TransactionTypeExpense, decimal.NewFromInt(300),
			financial.CategoryGroceries, "", "", monthStart.AddDate(0, -i, 5),
		)
		require.NoError(t, err)
		require.NoError(t, f.txRepo.Save(ctx, tx))
	}

	suggestions, err := budgetSvc.Suggestions(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	s := suggestions[0]
	assert.Equal(t, financial.CategoryGroceries, s.Category)
	assert.True(t, s.AverageSpend.Equal(decimal.NewFromInt(300)))
	assert.True(t, s.SuggestedLimit.Equal(decimal.NewFromInt(330)))
	assert.Equal(t, "high", s.Confidence)
}

func TestBudgetSetAndStatus(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture()
	budgetSvc := NewBudgetService(f.budget, f.txRepo)

	f.addTx(t, financial.TransactionTypeExpense, 250, financial.CategoryDining, 0)

	status, err := budgetSvc.Set(ctx, f.userID, SetBudgetRequest{
		Category:     financial.CategoryDining,
		MonthlyLimit: decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	assert.True(t, status.Spent.Equal(decimal.NewFromInt(250)))
	assert.True(t, status.OverBudget)
	assert.InDelta(t, 125.0, status.UsedPercent, 0.01)

	t.Run("set again updates in place", func(t *testing.T) {
		updated, err := budgetSvc.Set(ctx, f.userID, SetBudgetRequest{
			Category:     financial.CategoryDining,
			MonthlyLimit: decimal.NewFromInt(300),
		})
		require.NoError(t, err)
		assert.Equal(t, status.ID, updated.ID)
		assert.False(t, updated.OverBudget)
	})
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 1.23, round2(1.234), 1e-9)
	assert.InDelta(t, 1.24, round2(1.236), 1e-9)
	assert.InDelta(t, 0.0, round2(0.0), 1e-9)
	// Negatives round away from zero, not toward it
	assert.InDelta(t, -1.24, round2(-1.236), 1e-9)
	assert.InDelta(t, -0.13, round2(-0.126), 1e-9)
}
