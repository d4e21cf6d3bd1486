package worklife

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
	"github.com/wellbeing/backend/internal/domain/worklife"
)

type mockSessionRepo struct {
	sessions map[uuid.UUID]*worklife.WorkSession
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[uuid.UUID]*worklife.WorkSession)}
}

func (m *mockSessionRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*worklife.WorkSession, error) {
	if s, ok := m.sessions[id]; ok && s.UserID == userID {
		return s, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockSessionRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]worklife.WorkSession, error) {
	var out []worklife.WorkSession
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

func (m *mockSessionRepo) FindInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]worklife.WorkSession, error) {
	var out []worklife.WorkSession
	for _, s := range m.sessions {
		if s.UserID == userID && !s.StartedAt.Before(from) && s.StartedAt.Before(to) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) Save(_ context.Context, session *worklife.WorkSession) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if s, ok := m.sessions[id]; ok && s.UserID == userID {
		delete(m.sessions, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockLifeEventRepo struct {
	events map[uuid.UUID]*worklife.LifeEvent
}

func newMockLifeEventRepo() *mockLifeEventRepo {
	return &mockLifeEventRepo{events: make(map[uuid.UUID]*worklife.LifeEvent)}
}

func (m *mockLifeEventRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*worklife.LifeEvent, error) {
	if e, ok := m.events[id]; ok && e.UserID == userID {
		return e, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockLifeEventRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]worklife.LifeEvent, error) {
	var out []worklife.LifeEvent
	for _, e := range m.events {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

func (m *mockLifeEventRepo) FindInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]worklife.LifeEvent, error) {
	var out []worklife.LifeEvent
	for _, e := range m.events {
		if e.UserID == userID && !e.OccurredAt.Before(from) && e.OccurredAt.Before(to) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockLifeEventRepo) Save(_ context.Context, event *worklife.LifeEvent) error {
	m.events[event.ID] = event
	return nil
}

func (m *mockLifeEventRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if e, ok := m.events[id]; ok && e.UserID == userID {
		delete(m.events, id)
		return nil
	}
	return shared.ErrNotFound
}
