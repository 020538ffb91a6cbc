// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindVisibleToUser retrieves system default categories plus the
	// user's own, system defaults first.
	FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameForUser checks for a name collision among the user's
	// own categories.
	ExistsByNameForUser(ctx context.Context, userID uuid.UUID, name string) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
