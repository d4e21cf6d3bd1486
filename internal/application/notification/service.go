package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/wellbeing/backend/internal/domain/notification"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// Service handles the notification inbox
type Service struct {
	notifRepo notification.Repository
}

// NewService creates a new notification service
func NewService(notifRepo notification.Repository) *Service {
	return &Service{notifRepo: notifRepo}
}

// List returns the user's notifications, newest first
func (s *Service) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]NotificationResponse, error) {
	items, err := s.notifRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return ToNotificationResponses(items), nil
}

// Unread returns the user's unread notifications
func (s *Service) Unread(ctx context.Context, userID uuid.UUID) ([]NotificationResponse, error) {
	items, err := s.notifRepo.FindUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToNotificationResponses(items), nil
}

// MarkRead flags one notification as read
func (s *Service) MarkRead(ctx context.Context, userID, id uuid.UUID) (*NotificationResponse, error) {
	item, err := s.notifRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	item.MarkRead()
	if err := s.notifRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return ToNotificationResponse(item), nil
}

// Delete removes one notification
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.notifRepo.DeleteForUser(ctx, userID, id)
}
