package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// Kind classifies a notification
type Kind string

const (
	KindBriefing       Kind = "briefing"
	KindBudgetAlert    Kind = "budget_alert"
	KindHealthReminder Kind = "health_reminder"
	KindBurnoutWarning Kind = "burnout_warning"
)

// Notification is an in-app message written by the scheduler or the
// alerting rules. Nothing is delivered externally; rows are listed and
// marked read through the API.
type Notification struct {
	shared.UserAggregateRoot
	Kind  Kind   `gorm:"type:varchar(20);not null;index"`
	Title string `gorm:"type:varchar(200);not null"`
	Body  string `gorm:"type:text"`
	Read  bool   `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// New creates a validated notification
func New(userID uuid.UUID, kind Kind, title, body string) (*Notification, error) {
	switch kind {
	case KindBriefing, KindBudgetAlert, KindHealthReminder, KindBurnoutWarning:
	default:
		return nil, shared.NewDomainError("INVALID_KIND", "Unknown notification kind")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}

	return &Notification{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		Kind:              kind,
		Title:             title,
		Body:              body,
	}, nil
}

// MarkRead flags the notification as read
func (n *Notification) MarkRead() {
	n.Read = true
	n.UpdatedAt = time.Now()
}

// Repository defines the interface for notification persistence
type Repository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Notification, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Notification, error)

	// FindUnread finds unread notifications, newest first
	FindUnread(ctx context.Context, userID uuid.UUID) ([]Notification, error)

	// ExistsSince reports whether a notification of the given kind was
	// created at or after the given time. Used to de-duplicate scheduled
	// alerts.
	ExistsSince(ctx context.Context, userID uuid.UUID, kind Kind, since time.Time) (bool, error)

	Save(ctx context.Context, n *Notification) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}
