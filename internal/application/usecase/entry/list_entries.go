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

// ListEntriesInput represents the input for listing entries.
type ListEntriesInput struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Kind       *entity.EntryKind
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Entries []*entity.EntryWithCategory
}

// ListEntriesUseCase handles entry listing logic.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry listing.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	entries, err := uc.entryRepo.FindByFilter(ctx, adapter.EntryFilter{
		UserID:     input.UserID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
		Kind:       input.Kind,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}
