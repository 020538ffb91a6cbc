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

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	LimitAmount  decimal.Decimal
	Month        int
	Year         int
	AlertPercent int
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic. At most one budget may
// exist per category and month.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Month < 1 || input.Month > 12 || input.Year < 2000 {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"month must be 1-12 and year must be plausible",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	if !input.LimitAmount.IsPositive() {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"budget limit must be positive",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil || !category.BelongsTo(input.UserID) {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeBudgetNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	exists, err := uc.budgetRepo.ExistsForCategoryPeriod(ctx, input.UserID, input.CategoryID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeBudgetExists,
			"a budget already exists for this category and month",
			domainerror.ErrBudgetExists,
		)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.LimitAmount, input.Month, input.Year, input.AlertPercent)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}
