// Package entry contains use cases for financial entries.
package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// DeleteEntryInput represents the input for entry deletion.
type DeleteEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// DeleteEntryUseCase handles entry deletion logic. Deleting a goal-linked
// income entry reverses its contribution to the goal ledger.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
	goalRepo  adapter.GoalRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(
	entryRepo adapter.EntryRepository,
	goalRepo adapter.GoalRepository,
) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
		goalRepo:  goalRepo,
	}
}

// Execute performs the entry deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	entry, err := uc.entryRepo.FindByOwner(ctx, input.EntryID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.entryRepo.Delete(ctx, input.EntryID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	if entry.Kind == entity.EntryKindIncome && entry.GoalID != nil {
		if err := uc.goalRepo.AddAmount(ctx, *entry.GoalID, entry.Amount.Neg()); err != nil {
			return fmt.Errorf("failed to debit goal amount: %w", err)
		}
	}

	return nil
}
