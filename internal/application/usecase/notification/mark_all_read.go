// Package notification contains use cases for in-app notifications.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// MarkAllReadInput represents the input for marking all notifications read.
type MarkAllReadInput struct {
	UserID uuid.UUID
}

// MarkAllReadUseCase marks every notification of the user as read.
type MarkAllReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkAllReadUseCase creates a new MarkAllReadUseCase instance.
func NewMarkAllReadUseCase(notificationRepo adapter.NotificationRepository) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute marks all notifications as read.
func (uc *MarkAllReadUseCase) Execute(ctx context.Context, input MarkAllReadInput) error {
	if err := uc.notificationRepo.MarkAllRead(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
