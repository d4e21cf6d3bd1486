package financial

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/shared"
)

type mockTransactionRepo struct {
	txs map[uuid.UUID]*financial.Transaction
}

func newMockTransactionRepo() *mockTransactionRepo {
	return &mockTransactionRepo{txs: make(map[uuid.UUID]*financial.Transaction)}
}

func (m *mockTransactionRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*financial.Transaction, error) {
	if tx, ok := m.txs[id]; ok && tx.UserID == userID {
		return tx, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockTransactionRepo) FindAllForUser(_ context.Context, userID uuid.UUID, filter shared.Filter) ([]financial.Transaction, error) {
	var out []financial.Transaction
	for _, tx := range m.txs {
		if tx.UserID == userID {
			out = append(out, *tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredOn.After(out[j].OccurredOn) })
	return out, nil
}

func (m *mockTransactionRepo) FindInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]financial.Transaction, error) {
	var out []financial.Transaction
	for _, tx := range m.txs {
		if tx.UserID == userID && !tx.OccurredOn.Before(from) && tx.OccurredOn.Before(to) {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (m *mockTransactionRepo) FindByCategoryInRange(_ context.Context, userID uuid.UUID, category string, from, to time.Time) ([]financial.Transaction, error) {
	var out []financial.Transaction
	for _, tx := range m.txs {
		if tx.UserID == userID && tx.Category == category && !tx.OccurredOn.Before(from) && tx.OccurredOn.Before(to) {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (m *mockTransactionRepo) Save(_ context.Context, tx *financial.Transaction) error {
	m.txs[tx.ID] = tx
	return nil
}

func (m *mockTransactionRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if tx, ok := m.txs[id]; ok && tx.UserID == userID {
		delete(m.txs, id)
		return nil
	}
	return shared.ErrNotFound
}

func (m *mockTransactionRepo) CountForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) (int64, error) {
	var count int64
	for _, tx := range m.txs {
		if tx.UserID == userID {
			count++
		}
	}
	return count, nil
}

type mockBudgetRepo struct {
	budgets map[uuid.UUID]*financial.Budget
}

func newMockBudgetRepo() *mockBudgetRepo {
	return &mockBudgetRepo{budgets: make(map[uuid.UUID]*financial.Budget)}
}

func (m *mockBudgetRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*financial.Budget, error) {
	if b, ok := m.budgets[id]; ok && b.UserID == userID {
		return b, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockBudgetRepo) FindByMonth(_ context.Context, userID uuid.UUID, month string) ([]financial.Budget, error) {
	var out []financial.Budget
	for _, b := range m.budgets {
		if b.UserID == userID && b.Month == month {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBudgetRepo) FindByCategoryAndMonth(_ context.Context, userID uuid.UUID, category, month string) (*financial.Budget, error) {
	for _, b := range m.budgets {
		if b.UserID == userID && b.Category == category && b.Month == month {
			return b, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockBudgetRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]financial.Budget, error) {
	var out []financial.Budget
	for _, b := range m.budgets {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBudgetRepo) Save(_ context.Context, budget *financial.Budget) error {
	m.budgets[budget.ID] = budget
	return nil
}

func (m *mockBudgetRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if b, ok := m.budgets[id]; ok && b.UserID == userID {
		delete(m.budgets, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockDebtRepo struct {
	debts map[uuid.UUID]*financial.Debt
}

func newMockDebtRepo() *mockDebtRepo {
	return &mockDebtRepo{debts: make(map[uuid.UUID]*financial.Debt)}
}

func (m *mockDebtRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*financial.Debt, error) {
	if d, ok := m.debts[id]; ok && d.UserID == userID {
		return d, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockDebtRepo) FindAllForUser(_ context.Context, userID uuid.UUID) ([]financial.Debt, error) {
	var out []financial.Debt
	for _, d := range m.debts {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *mockDebtRepo) FindOutstanding(_ context.Context, userID uuid.UUID) ([]financial.Debt, error) {
	var out []financial.Debt
	for _, d := range m.debts {
		if d.UserID == userID && d.Balance.IsPositive() {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *mockDebtRepo) Save(_ context.Context, debt *financial.Debt) error {
	m.debts[debt.ID] = debt
	return nil
}

func (m *mockDebtRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if d, ok := m.debts[id]; ok && d.UserID == userID {
		delete(m.debts, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockSavingsGoalRepo struct {
	goals map[uuid.UUID]*financial.SavingsGoal
}

func newMockSavingsGoalRepo() *mockSavingsGoalRepo {
	return &mockSavingsGoalRepo{goals: make(map[uuid.UUID]*financial.SavingsGoal)}
}

func (m *mockSavingsGoalRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*financial.SavingsGoal, error) {
	if g, ok := m.goals[id]; ok && g.UserID == userID {
		return g, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockSavingsGoalRepo) FindAllForUser(_ context.Context, userID uuid.UUID) ([]financial.SavingsGoal, error) {
	var out []financial.SavingsGoal
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (m *mockSavingsGoalRepo) Save(_ context.Context, goal *financial.SavingsGoal) error {
	m.goals[goal.ID] = goal
	return nil
}

func (m *mockSavingsGoalRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if g, ok := m.goals[id]; ok && g.UserID == userID {
		delete(m.goals, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockInvestmentRepo struct {
	investments map[uuid.UUID]*financial.Investment
}

func newMockInvestmentRepo() *mockInvestmentRepo {
	return &mockInvestmentRepo{investments: make(map[uuid.UUID]*financial.Investment)}
}

func (m *mockInvestmentRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*financial.Investment, error) {
	if inv, ok := m.investments[id]; ok && inv.UserID == userID {
		return inv, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockInvestmentRepo) FindAllForUser(_ context.Context, userID uuid.UUID) ([]financial.Investment, error) {
	var out []financial.Investment
	for _, inv := range m.investments {
		if inv.UserID == userID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (m *mockInvestmentRepo) Save(_ context.Context, investment *financial.Investment) error {
	m.investments[investment.ID] = investment
	return nil
}

func (m *mockInvestmentRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if inv, ok := m.investments[id]; ok && inv.UserID == userID {
		delete(m.investments, id)
		return nil
	}
	return shared.ErrNotFound
}
