package financial

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/financial"
)

// InvestmentService handles investment tracking
type InvestmentService struct {
	investmentRepo financial.InvestmentRepository
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(investmentRepo financial.InvestmentRepository) *InvestmentService {
	return &InvestmentService{investmentRepo: investmentRepo}
}

// Create starts tracking an investment
func (s *InvestmentService) Create(ctx context.Context, userID uuid.UUID, req CreateInvestmentRequest) (*InvestmentResponse, error) {
	kind := financial.InvestmentKind(req.Kind)
	if req.Kind == "" {
		kind = financial.InvestmentKindOther
	}

	investment, err := financial.NewInvestment(userID, req.Name, kind, req.InvestedAmount, req.CurrentValue)
	if err != nil {
		return nil, err
	}
	if err := s.investmentRepo.Save(ctx, investment); err != nil {
		return nil, err
	}
	resp := ToInvestmentResponse(investment)
	return &resp, nil
}

// List returns all investments for a user
func (s *InvestmentService) List(ctx context.Context, userID uuid.UUID) ([]InvestmentResponse, error) {
	investments, err := s.investmentRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]InvestmentResponse, len(investments))
	for i := range investments {
		out[i] = ToInvestmentResponse(&investments[i])
	}
	return out, nil
}

// Update replaces an investment's fields
func (s *InvestmentService) Update(ctx context.Context, userID, id uuid.UUID, req CreateInvestmentRequest) (*InvestmentResponse, error) {
	investment, err := s.investmentRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	kind := financial.InvestmentKind(req.Kind)
	if req.Kind == "" {
		kind = investment.Kind
	}
	if err := investment.Update(req.Name, kind, req.InvestedAmount, req.CurrentValue); err != nil {
		return nil, err
	}
	if err := s.investmentRepo.Save(ctx, investment); err != nil {
		return nil, err
	}
	resp := ToInvestmentResponse(investment)
	return &resp, nil
}

// Delete removes an investment
func (s *InvestmentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.investmentRepo.DeleteForUser(ctx, userID, id)
}
