package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
	"github.com/wellbeing/backend/internal/domain/worklife"
	"gorm.io/gorm"
)

// GormWorkSessionRepository implements worklife.WorkSessionRepository using GORM
type GormWorkSessionRepository struct {
	db *gorm.DB
}

// NewGormWorkSessionRepository creates a new GormWorkSessionRepository
func NewGormWorkSessionRepository(db *gorm.DB) *GormWorkSessionRepository {
	return &GormWorkSessionRepository{db: db}
}

// FindByIDForUser finds a work session by ID for a user
func (r *GormWorkSessionRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*worklife.WorkSession, error) {
	var s worklife.WorkSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAllForUser finds work sessions for a user matching the filter
func (r *GormWorkSessionRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]worklife.WorkSession, error) {
	var items []worklife.WorkSession
	query := r.db.WithContext(ctx).
		Model(&worklife.WorkSession{}).
		Where("user_id = ?", userID)
	query = applyFilter(query, filter, SessionSortFields, "started_at")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindInRange finds sessions with started_at in [from, to)
func (r *GormWorkSessionRepository) FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]worklife.WorkSession, error) {
	var items []worklife.WorkSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND started_at >= ? AND started_at < ?", userID, from, to).
		Order("started_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a work session
func (r *GormWorkSessionRepository) Save(ctx context.Context, session *worklife.WorkSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// DeleteForUser deletes a work session owned by the user
func (r *GormWorkSessionRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return deleteForUser(ctx, r.db, userID, id, &worklife.WorkSession{})
}

// GormLifeEventRepository implements worklife.LifeEventRepository using GORM
type GormLifeEventRepository struct {
	db *gorm.DB
}

// NewGormLifeEventRepository creates a new GormLifeEventRepository
func NewGormLifeEventRepository(db *gorm.DB) *GormLifeEventRepository {
	return &GormLifeEventRepository{db: db}
}

// FindByIDForUser finds a life event by ID for a user
func (r *GormLifeEventRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*worklife.LifeEvent, error) {
	var e worklife.LifeEvent
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindAllForUser finds life events for a user matching the filter
func (r *GormLifeEventRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]worklife.LifeEvent, error) {
	var items []worklife.LifeEvent
	query := r.db.WithContext(ctx).
		Model(&worklife.LifeEvent{}).
		Where("user_id = ?", userID)
	if eventType, ok := filter.Filters["event_type"]; ok {
		query = query.Where("event_type = ?", eventType)
	}
	query = applyFilter(query, filter, CommonSortFields, "created_at")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindInRange finds events with occurred_at in [from, to)
func (r *GormLifeEventRepository) FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]worklife.LifeEvent, error) {
	var items []worklife.LifeEvent
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, from, to).
		Order("occurred_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a life event
func (r *GormLifeEventRepository) Save(ctx context.Context, event *worklife.LifeEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// DeleteForUser deletes a life event owned by the user
func (r *GormLifeEventRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return deleteForUser(ctx, r.db, userID, id, &worklife.LifeEvent{})
}
