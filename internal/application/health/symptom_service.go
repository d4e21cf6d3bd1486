package health

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// SymptomService handles symptom episode tracking
type SymptomService struct {
	symptomRepo health.SymptomRepository
}

// NewSymptomService creates a new symptom service
func NewSymptomService(symptomRepo health.SymptomRepository) *SymptomService {
	return &SymptomService{symptomRepo: symptomRepo}
}

// Report opens a new symptom episode
func (s *SymptomService) Report(ctx context.Context, userID uuid.UUID, req ReportSymptomRequest) (*SymptomResponse, error) {
	sym, err := health.NewSymptom(userID, req.Name, health.SymptomSeverity(req.Severity), req.BodyPart, req.Description, req.StartedAt, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.symptomRepo.Save(ctx, sym); err != nil {
		return nil, err
	}
	return ToSymptomResponse(sym), nil
}

// Get returns a single symptom episode
func (s *SymptomService) Get(ctx context.Context, userID, id uuid.UUID) (*SymptomResponse, error) {
	sym, err := s.symptomRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToSymptomResponse(sym), nil
}

// List returns symptom episodes matching the filter
func (s *SymptomService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]SymptomResponse, error) {
	symptoms, err := s.symptomRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return ToSymptomResponses(symptoms), nil
}

// Update changes an episode's severity and notes; a non-nil EndedAt resolves it
func (s *SymptomService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateSymptomRequest) (*SymptomResponse, error) {
	sym, err := s.symptomRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := sym.Update(health.SymptomSeverity(req.Severity), req.Description, req.Notes); err != nil {
		return nil, err
	}
	if req.EndedAt != nil {
		if err := sym.Resolve(*req.EndedAt); err != nil {
			return nil, err
		}
	}
	if err := s.symptomRepo.Save(ctx, sym); err != nil {
		return nil, err
	}
	return ToSymptomResponse(sym), nil
}

// Delete removes a symptom episode
func (s *SymptomService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.symptomRepo.DeleteForUser(ctx, userID, id)
}
