// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

// GoalRepository defines the interface for savings goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindVisibleToUser retrieves goals the user owns plus goals the user
	// was invited to.
	FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal and its memberships.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddAmount atomically adjusts the goal's saved amount. The delta may
	// be negative when a contribution entry is removed.
	AddAmount(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error

	// AddMember records a membership on the goal.
	AddMember(ctx context.Context, member *entity.GoalMember) error

	// IsMember reports whether the user owns or was invited to the goal.
	IsMember(ctx context.Context, goalID, userID uuid.UUID) (bool, error)

	// FindMembers retrieves the goal's memberships with user data preloaded.
	FindMembers(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalMember, error)

	// ContributionsByUser sums income entries referencing the goal, grouped
	// by contributing user.
	ContributionsByUser(ctx context.Context, goalID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}
