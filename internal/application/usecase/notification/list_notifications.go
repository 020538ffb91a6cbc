// Package notification contains use cases for in-app notifications.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// ListNotificationsInput represents the input for listing notifications.
type ListNotificationsInput struct {
	UserID uuid.UUID
}

// ListNotificationsOutput represents the output of listing notifications.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
	UnreadCount   int64
}

// ListNotificationsUseCase lists the user's notifications, newest first.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute performs the notification listing.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	notifications, err := uc.notificationRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &ListNotificationsOutput{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}
