// Package entry contains use cases for financial entries.
package entry

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// GetEntryInput represents the input for fetching a single entry.
type GetEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// GetEntryOutput represents the output of fetching a single entry.
type GetEntryOutput struct {
	Entry *entity.Entry
}

// GetEntryUseCase fetches one entry, owner-scoped.
type GetEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(entryRepo adapter.EntryRepository) *GetEntryUseCase {
	return &GetEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry lookup.
func (uc *GetEntryUseCase) Execute(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
	entry, err := uc.entryRepo.FindByOwner(ctx, input.EntryID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetEntryOutput{
		Entry: entry,
	}, nil
}
