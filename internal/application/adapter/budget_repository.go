// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByOwner retrieves a budget by id for the given owner.
	FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// FindByPeriod retrieves the user's budgets for one month.
	FindByPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.Budget, error)

	// ExistsForCategoryPeriod checks whether a budget already covers the
	// category in the given month.
	ExistsForCategoryPeriod(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (bool, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget for the given owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
