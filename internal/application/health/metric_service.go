package health

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// MetricService handles health metric CRUD
type MetricService struct {
	metricRepo health.MetricRepository
}

// NewMetricService creates a new metric service
func NewMetricService(metricRepo health.MetricRepository) *MetricService {
	return &MetricService{metricRepo: metricRepo}
}

// Record stores a new measurement
func (s *MetricService) Record(ctx context.Context, userID uuid.UUID, req RecordMetricRequest) (*MetricResponse, error) {
	m, err := health.NewMetric(userID, health.MetricType(req.MetricType), req.Value, req.SecondaryValue, req.RecordedAt, req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.metricRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return ToMetricResponse(m), nil
}

// Get returns a single measurement
func (s *MetricService) Get(ctx context.Context, userID, id uuid.UUID) (*MetricResponse, error) {
	m, err := s.metricRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToMetricResponse(m), nil
}

// List returns measurements matching the filter
func (s *MetricService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]MetricResponse, error) {
	ms, err := s.metricRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return ToMetricResponses(ms), nil
}

// Update replaces a measurement's value and note
func (s *MetricService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateMetricRequest) (*MetricResponse, error) {
	m, err := s.metricRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := m.Update(req.Value, req.SecondaryValue, req.RecordedAt, req.Note); err != nil {
		return nil, err
	}
	if err := s.metricRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return ToMetricResponse(m), nil
}

// Delete removes a measurement
func (s *MetricService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.metricRepo.DeleteForUser(ctx, userID, id)
}
