// Package entry contains use cases for financial entries.
package entry

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/domain/schedule"
)

// GetStatementInput represents the input for a statement listing.
type GetStatementInput struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
}

// StatementLine is one row of the statement. Installment lines are virtual
// occurrences projected from a stored credit purchase; Label then carries the
// "k/n" position and EntryID points back at the stored entry.
type StatementLine struct {
	EntryID     uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Kind        entity.EntryKind
	Label       string
	Category    *entity.Category
}

// GetStatementOutput represents the statement lines plus period totals.
type GetStatementOutput struct {
	Lines        []StatementLine
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
}

// GetStatementUseCase lists the period's movements, projecting installment
// occurrences of credit purchases into the window. A purchase dated before
// the window still surfaces here while its later installments fall inside it.
type GetStatementUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewGetStatementUseCase creates a new GetStatementUseCase instance.
func NewGetStatementUseCase(entryRepo adapter.EntryRepository) *GetStatementUseCase {
	return &GetStatementUseCase{
		entryRepo: entryRepo,
	}
}

// Execute builds the statement.
func (uc *GetStatementUseCase) Execute(ctx context.Context, input GetStatementInput) (*GetStatementOutput, error) {
	// No lower date bound: an old credit purchase may still project
	// installments into the requested window.
	to := input.To
	entries, err := uc.entryRepo.FindByFilter(ctx, adapter.EntryFilter{
		UserID:  input.UserID,
		EndDate: &to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	window := schedule.Window{Start: input.From, End: input.To}
	income := decimal.Zero
	expense := decimal.Zero

	var lines []StatementLine
	for _, e := range entries {
		for _, occ := range schedule.Project(e.Entry, &window) {
			lines = append(lines, StatementLine{
				EntryID:     e.Entry.ID,
				Date:        occ.Date,
				Description: e.Entry.Description,
				Amount:      occ.Amount,
				Kind:        e.Entry.Kind,
				Label:       occ.Label,
				Category:    e.Category,
			})
			if e.Entry.Kind == entity.EntryKindIncome {
				income = income.Add(occ.Amount)
			} else {
				expense = expense.Add(occ.Amount)
			}
		}
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})

	return &GetStatementOutput{
		Lines:        lines,
		IncomeTotal:  income,
		ExpenseTotal: expense,
	}, nil
}
