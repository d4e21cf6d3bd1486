package worklife

import (
	"context"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
	"github.com/wellbeing/backend/internal/domain/worklife"
)

// SessionService handles work session CRUD
type SessionService struct {
	sessionRepo worklife.WorkSessionRepository
}

// NewSessionService creates a new work session service
func NewSessionService(sessionRepo worklife.WorkSessionRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

// Log records a work session
func (s *SessionService) Log(ctx context.Context, userID uuid.UUID, req LogSessionRequest) (*SessionResponse, error) {
	ws, err := worklife.NewWorkSession(userID, req.StartedAt, req.EndedAt, req.MeetingMinutes, req.Stress, req.EnergyAfter, req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Save(ctx, ws); err != nil {
		return nil, err
	}
	return ToSessionResponse(ws), nil
}

// Get returns a single work session
func (s *SessionService) Get(ctx context.Context, userID, id uuid.UUID) (*SessionResponse, error) {
	ws, err := s.sessionRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToSessionResponse(ws), nil
}

// List returns work sessions matching the filter
func (s *SessionService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]SessionResponse, error) {
	sessions, err := s.sessionRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return ToSessionResponses(sessions), nil
}

// Update replaces a work session's fields
func (s *SessionService) Update(ctx context.Context, userID, id uuid.UUID, req LogSessionRequest) (*SessionResponse, error) {
	ws, err := s.sessionRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := ws.Update(req.StartedAt, req.EndedAt, req.MeetingMinutes, req.Stress, req.EnergyAfter, req.Note); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Save(ctx, ws); err != nil {
		return nil, err
	}
	return ToSessionResponse(ws), nil
}

// Delete removes a work session
func (s *SessionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.sessionRepo.DeleteForUser(ctx, userID, id)
}

// LifeEventService handles life event CRUD
type LifeEventService struct {
	eventRepo worklife.LifeEventRepository
}

// NewLifeEventService creates a new life event service
func NewLifeEventService(eventRepo worklife.LifeEventRepository) *LifeEventService {
	return &LifeEventService{eventRepo: eventRepo}
}

// Log records personal time
func (s *LifeEventService) Log(ctx context.Context, userID uuid.UUID, req LogLifeEventRequest) (*LifeEventResponse, error) {
	ev, err := worklife.NewLifeEvent(userID, worklife.LifeEventType(req.EventType), req.Title, req.DurationMinutes, req.EnergyImpact, req.OccurredAt)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Save(ctx, ev); err != nil {
		return nil, err
	}
	return ToLifeEventResponse(ev), nil
}

// Get returns a single life event
func (s *LifeEventService) Get(ctx context.Context, userID, id uuid.UUID) (*LifeEventResponse, error) {
	ev, err := s.eventRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToLifeEventResponse(ev), nil
}

// List returns life events matching the filter
func (s *LifeEventService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]LifeEventResponse, error) {
	events, err := s.eventRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return ToLifeEventResponses(events), nil
}

// Update replaces a life event's fields
func (s *LifeEventService) Update(ctx context.Context, userID, id uuid.UUID, req LogLifeEventRequest) (*LifeEventResponse, error) {
	ev, err := s.eventRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := ev.Update(worklife.LifeEventType(req.EventType), req.Title, req.DurationMinutes, req.EnergyImpact, req.OccurredAt); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Save(ctx, ev); err != nil {
		return nil, err
	}
	return ToLifeEventResponse(ev), nil
}

// Delete removes a life event
func (s *LifeEventService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.eventRepo.DeleteForUser(ctx, userID, id)
}
