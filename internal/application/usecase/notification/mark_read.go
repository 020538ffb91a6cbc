// Package notification contains use cases for in-app notifications.
package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// MarkReadInput represents the input for marking a notification as read.
type MarkReadInput struct {
	NotificationID uuid.UUID
	UserID         uuid.UUID
}

// MarkReadUseCase marks one notification as read, owner-scoped.
type MarkReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkReadUseCase creates a new MarkReadUseCase instance.
func NewMarkReadUseCase(notificationRepo adapter.NotificationRepository) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute marks the notification as read.
func (uc *MarkReadUseCase) Execute(ctx context.Context, input MarkReadInput) error {
	return uc.notificationRepo.MarkRead(ctx, input.NotificationID, input.UserID)
}
