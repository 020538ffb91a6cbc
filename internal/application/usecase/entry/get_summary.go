// Package entry contains use cases for financial entries.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the income/expense summary.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetSummaryOutput represents the aggregated totals.
type GetSummaryOutput struct {
	Totals *entity.EntryTotals
}

// GetSummaryUseCase aggregates income and expense totals over a period.
type GetSummaryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(entryRepo adapter.EntryRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the aggregation.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	totals, err := uc.entryRepo.GetTotals(ctx, adapter.EntryFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate totals: %w", err)
	}

	return &GetSummaryOutput{
		Totals: totals,
	}, nil
}
