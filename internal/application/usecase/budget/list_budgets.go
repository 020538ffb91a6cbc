// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/domain/schedule"
)

// installmentLookbackMonths bounds how far back the status query reaches for
// credit purchases whose installments may land in the target month.
const installmentLookbackMonths = 60

// ListBudgetsInput represents the input for listing budgets with status.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// ListBudgetsOutput represents budgets with their monthly spending status.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithStatus
}

// ListBudgetsUseCase lists the month's budgets with the amount spent against
// each. Spending counts debit expenses dated in the month plus the
// installment slices of credit purchases that fall there.
type ListBudgetsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	entryRepo    adapter.EntryRepository
	categoryRepo adapter.CategoryRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	entryRepo adapter.EntryRepository,
	categoryRepo adapter.CategoryRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:   budgetRepo,
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByPeriod(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if len(budgets) == 0 {
		return &ListBudgetsOutput{Budgets: []*entity.BudgetWithStatus{}}, nil
	}

	monthStart := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := schedule.AddMonths(monthStart, 1).AddDate(0, 0, -1)
	lookback := schedule.AddMonths(monthStart, -installmentLookbackMonths)

	expenses, err := uc.entryRepo.FindExpensesAround(ctx, input.UserID, lookback, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	// Spending per category for the target month, installments projected.
	spentByCategory := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range expenses {
		if e.Entry.CategoryID == nil {
			continue
		}
		amount := schedule.InstallmentForMonth(e.Entry, input.Year, time.Month(input.Month))
		if amount.IsZero() {
			continue
		}
		spentByCategory[*e.Entry.CategoryID] = spentByCategory[*e.Entry.CategoryID].Add(amount)
	}

	result := make([]*entity.BudgetWithStatus, 0, len(budgets))
	for _, b := range budgets {
		category, err := uc.categoryRepo.FindByID(ctx, b.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to load budget category: %w", err)
		}

		spent := spentByCategory[b.CategoryID]
		usage := 0
		if b.LimitAmount.IsPositive() {
			usage = int(spent.Div(b.LimitAmount).Mul(decimal.NewFromInt(100)).IntPart())
		}
		result = append(result, &entity.BudgetWithStatus{
			Budget:       b,
			Category:     category,
			Spent:        spent,
			UsagePercent: usage,
			Alerting:     usage >= b.AlertPercent,
		})
	}

	return &ListBudgetsOutput{
		Budgets: result,
	}, nil
}
