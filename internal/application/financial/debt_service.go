package financial

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// maxPayoffMonths caps the payoff simulation horizon
const maxPayoffMonths = 360

// DebtService handles debt tracking and payoff simulation
type DebtService struct {
	debtRepo financial.DebtRepository
}

// NewDebtService creates a new debt service
func NewDebtService(debtRepo financial.DebtRepository) *DebtService {
	return &DebtService{debtRepo: debtRepo}
}

// Create starts tracking a debt
func (s *DebtService) Create(ctx context.Context, userID uuid.UUID, req CreateDebtRequest) (*DebtResponse, error) {
	kind := financial.DebtKind(req.Kind)
	if req.Kind == "" {
		kind = financial.DebtKindOther
	}

	debt, err := financial.NewDebt(userID, req.Name, kind, req.Balance, req.InterestRate, req.MinimumPayment)
	if err != nil {
		return nil, err
	}

	if err := s.debtRepo.Save(ctx, debt); err != nil {
		return nil, err
	}

	resp := ToDebtResponse(debt)
	return &resp, nil
}

// List returns all debts for a user
func (s *DebtService) List(ctx context.Context, userID uuid.UUID) ([]DebtResponse, error) {
	debts, err := s.debtRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]DebtResponse, len(debts))
	for i := range debts {
		out[i] = ToDebtResponse(&debts[i])
	}
	return out, nil
}

// Update replaces a debt's fields
func (s *DebtService) Update(ctx context.Context, userID, id uuid.UUID, req CreateDebtRequest) (*DebtResponse, error) {
	debt, err := s.debtRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	kind := financial.DebtKind(req.Kind)
	if req.Kind == "" {
		kind = debt.Kind
	}
	if err := debt.Update(req.Name, kind, req.Balance, req.InterestRate, req.MinimumPayment); err != nil {
		return nil, err
	}

	if err := s.debtRepo.Save(ctx, debt); err != nil {
		return nil, err
	}

	resp := ToDebtResponse(debt)
	return &resp, nil
}

// RecordPayment applies a payment to a debt, flooring the balance at zero
func (s *DebtService) RecordPayment(ctx context.Context, userID, id uuid.UUID, req DebtPaymentRequest) (*DebtResponse, error) {
	debt, err := s.debtRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := debt.RecordPayment(req.Amount); err != nil {
		return nil, err
	}

	if err := s.debtRepo.Save(ctx, debt); err != nil {
		return nil, err
	}

	resp := ToDebtResponse(debt)
	return &resp, nil
}

// Delete removes a debt
func (s *DebtService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.debtRepo.DeleteForUser(ctx, userID, id)
}

// simulatedDebt is the mutable state of one debt during simulation
type simulatedDebt struct {
	id           uuid.UUID
	name         string
	balance      decimal.Decimal
	rate         decimal.Decimal
	minimum      decimal.Decimal
	interestPaid decimal.Decimal
	paidOffMonth int
}

// PayoffPlan simulates paying down all outstanding debts month by month.
// Avalanche targets the highest interest rate first, snowball the smallest
// balance. All minimums are paid every month; the extra payment goes to
// the current target and rolls over when it is cleared.
func (s *DebtService) PayoffPlan(ctx context.Context, userID uuid.UUID, req PayoffPlanRequest) (*PayoffPlanResponse, error) {
	debts, err := s.debtRepo.FindOutstanding(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(debts) == 0 {
		return &PayoffPlanResponse{
			Strategy: req.Strategy,
			Schedule: []DebtScheduleEntry{},
		}, nil
	}
	if req.ExtraPayment.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Extra payment cannot be negative")
	}

	sims := make([]*simulatedDebt, len(debts))
	for i := range debts {
		sims[i] = &simulatedDebt{
			id:      debts[i].ID,
			name:    debts[i].Name,
			balance: debts[i].Balance,
			rate:    debts[i].InterestRate,
			minimum: debts[i].MinimumPayment,
		}
	}

	switch req.Strategy {
	case "avalanche":
		sort.Slice(sims, func(i, j int) bool { return sims[i].rate.GreaterThan(sims[j].rate) })
	case "snowball":
		sort.Slice(sims, func(i, j int) bool { return sims[i].balance.LessThan(sims[j].balance) })
	default:
		return nil, shared.NewDomainError("INVALID_STRATEGY", "Strategy must be avalanche or snowball")
	}

	twelve := decimal.NewFromInt(12)
	hundred := decimal.NewFromInt(100)

	month := 0
	truncated := false
	for hasOutstanding(sims) {
		month++
		if month > maxPayoffMonths {
			month = maxPayoffMonths
			truncated = true
			break
		}

		// Accrue interest, then pay minimums
		extra := req.ExtraPayment
		for _, d := range sims {
			if !d.balance.IsPositive() {
				continue
			}
			interest := d.balance.Mul(d.rate.Div(hundred)).Div(twelve)
			d.balance = d.balance.Add(interest)
			d.interestPaid = d.interestPaid.Add(interest)

			payment := d.minimum
			if payment.GreaterThan(d.balance) {
				// minimum overshoots; surplus rolls into the extra pool
				extra = extra.Add(payment.Sub(d.balance))
				payment = d.balance
			}
			d.balance = d.balance.Sub(payment)
			if !d.balance.IsPositive() && d.paidOffMonth == 0 {
				d.paidOffMonth = month
			}
		}

		// Extra payment hits targets in strategy order
		for _, d := range sims {
			if extra.IsZero() || extra.IsNegative() {
				break
			}
			if !d.balance.IsPositive() {
				continue
			}
			payment := extra
			if payment.GreaterThan(d.balance) {
				payment = d.balance
			}
			d.balance = d.balance.Sub(payment)
			extra = extra.Sub(payment)
			if !d.balance.IsPositive() && d.paidOffMonth == 0 {
				d.paidOffMonth = month
			}
		}
	}

	totalInterest := decimal.Zero
	schedule := make([]DebtScheduleEntry, len(sims))
	for i, d := range sims {
		months := d.paidOffMonth
		if months == 0 {
			months = month
		}
		schedule[i] = DebtScheduleEntry{
			DebtID:       d.id,
			Name:         d.name,
			Months:       months,
			InterestPaid: d.interestPaid.Round(2),
		}
		totalInterest = totalInterest.Add(d.interestPaid)
	}

	resp := &PayoffPlanResponse{
		Strategy:      req.Strategy,
		TotalMonths:   month,
		TotalInterest: totalInterest.Round(2),
		Truncated:     truncated,
		Schedule:      schedule,
	}
	if !truncated && month > 0 {
		resp.DebtFreeBy = time.Now().AddDate(0, month, 0).Format("2006-01")
	}
	return resp, nil
}

func hasOutstanding(sims []*simulatedDebt) bool {
	for _, d := range sims {
		if d.balance.IsPositive() {
			return true
		}
	}
	return false
}
