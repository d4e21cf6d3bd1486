package worklife

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// WorkSessionRepository defines the interface for work session persistence
type WorkSessionRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*WorkSession, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]WorkSession, error)

	// FindInRange finds sessions with started_at in [from, to)
	FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]WorkSession, error)

	Save(ctx context.Context, session *WorkSession) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// LifeEventRepository defines the interface for life event persistence
type LifeEventRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*LifeEvent, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]LifeEvent, error)
	FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]LifeEvent, error)
	Save(ctx context.Context, event *LifeEvent) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}
