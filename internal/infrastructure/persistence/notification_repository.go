package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/notification"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormNotificationRepository implements notification.Repository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// FindByIDForUser finds a notification by ID for a user
func (r *GormNotificationRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*notification.Notification, error) {
	var n notification.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// FindAllForUser finds notifications for a user matching the filter
func (r *GormNotificationRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]notification.Notification, error) {
	var items []notification.Notification
	query := r.db.WithContext(ctx).
		Model(&notification.Notification{}).
		Where("user_id = ?", userID)
	if kind, ok := filter.Filters["kind"]; ok {
		query = query.Where("kind = ?", kind)
	}
	if unread, ok := filter.Filters["unread"]; ok && unread == true {
		query = query.Where("read = false")
	}
	query = applyFilter(query, filter, CommonSortFields, "created_at")

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindUnread finds unread notifications, newest first
func (r *GormNotificationRepository) FindUnread(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	var items []notification.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND read = false", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsSince reports whether a notification of the given kind exists at or
// after the given time
func (r *GormNotificationRepository) ExistsSince(ctx context.Context, userID uuid.UUID, kind notification.Kind, since time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&notification.Notification{}).
		Where("user_id = ? AND kind = ? AND created_at >= ?", userID, kind, since).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a notification
func (r *GormNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

// DeleteForUser deletes a notification owned by the user
func (r *GormNotificationRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return deleteForUser(ctx, r.db, userID, id, &notification.Notification{})
}
