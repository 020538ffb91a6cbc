// Package entry contains use cases for financial entries.
package entry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// UpdateEntryInput represents the input for entry update. Nil pointers leave
// the corresponding field untouched. Version must match the stored row or
// the update is rejected as a conflict.
type UpdateEntryInput struct {
	EntryID          uuid.UUID
	UserID           uuid.UUID
	Version          int
	Description      *string
	Amount           *decimal.Decimal
	Date             *time.Time
	CategoryID       *uuid.UUID
	InstallmentsPaid *int
}

// UpdateEntryOutput represents the output of entry update.
type UpdateEntryOutput struct {
	Entry *entity.Entry
}

// UpdateEntryUseCase handles entry update logic. When the amount of a
// goal-linked income entry changes, the goal ledger is adjusted by the
// difference.
type UpdateEntryUseCase struct {
	entryRepo adapter.EntryRepository
	goalRepo  adapter.GoalRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(
	entryRepo adapter.EntryRepository,
	goalRepo adapter.GoalRepository,
) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo: entryRepo,
		goalRepo:  goalRepo,
	}
}

// Execute performs the entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := uc.entryRepo.FindByOwner(ctx, input.EntryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Version != entry.Version {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryConflict,
			"entry was modified concurrently",
			domainerror.ErrEntryConflict,
		)
	}

	previousAmount := entry.Amount

	if input.Description != nil {
		entry.Description = strings.TrimSpace(*input.Description)
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be positive",
				domainerror.ErrInvalidAmount,
			)
		}
		entry.Amount = *input.Amount
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.CategoryID != nil {
		entry.CategoryID = input.CategoryID
	}
	if input.InstallmentsPaid != nil {
		paid := *input.InstallmentsPaid
		if paid < 0 || paid > entry.InstallmentCount {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeInvalidInstallments,
				"installments paid must be between 0 and the installment count",
				domainerror.ErrInvalidInstallments,
			)
		}
		entry.InstallmentsPaid = paid
	}

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	if entry.Kind == entity.EntryKindIncome && entry.GoalID != nil && !entry.Amount.Equal(previousAmount) {
		delta := entry.Amount.Sub(previousAmount)
		if err := uc.goalRepo.AddAmount(ctx, *entry.GoalID, delta); err != nil {
			return nil, fmt.Errorf("failed to adjust goal amount: %w", err)
		}
	}

	return &UpdateEntryOutput{
		Entry: entry,
	}, nil
}
