// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget deletion.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	if _, err := uc.budgetRepo.FindByOwner(ctx, input.BudgetID, input.UserID); err != nil {
		return err
	}

	if err := uc.budgetRepo.Delete(ctx, input.BudgetID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	return nil
}
