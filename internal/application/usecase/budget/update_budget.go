// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update. Nil pointers
// leave the corresponding field untouched.
type UpdateBudgetInput struct {
	BudgetID     uuid.UUID
	UserID       uuid.UUID
	LimitAmount  *decimal.Decimal
	AlertPercent *int
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic. Category and period are
// fixed at creation; only the limit and alert threshold move.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByOwner(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.LimitAmount != nil {
		if !input.LimitAmount.IsPositive() {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"budget limit must be positive",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		budget.LimitAmount = *input.LimitAmount
	}
	if input.AlertPercent != nil {
		if *input.AlertPercent < 1 || *input.AlertPercent > 100 {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"alert percent must be between 1 and 100",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		budget.AlertPercent = *input.AlertPercent
	}

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: budget,
	}, nil
}
