// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence operations.
type NotificationRepository interface {
	// Create creates a new notification in the database.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUser retrieves the user's notifications, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks a notification as read for the given owner.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead marks every notification of the user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// IntegrationLogRepository defines the interface for scheduler audit records.
type IntegrationLogRepository interface {
	// Create appends an audit record for a scheduler run.
	Create(ctx context.Context, log *entity.IntegrationLog) error

	// FindRecent retrieves the latest audit records for an integration name.
	FindRecent(ctx context.Context, name string, limit int) ([]*entity.IntegrationLog, error)
}

// PlanRepository defines the interface for subscription plan reads.
type PlanRepository interface {
	// FindAll retrieves every plan with its features preloaded.
	FindAll(ctx context.Context) ([]*entity.Plan, error)

	// CountAll returns the number of seeded plans.
	CountAll(ctx context.Context) (int64, error)

	// Create creates a plan with its features, used by the seeder.
	Create(ctx context.Context, plan *entity.Plan) error
}
