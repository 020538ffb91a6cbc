// Package recurring contains use cases for recurring entry templates.
package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// ListTemplatesInput represents the input for listing templates.
type ListTemplatesInput struct {
	UserID uuid.UUID
}

// ListTemplatesOutput represents the output of listing templates.
type ListTemplatesOutput struct {
	Templates []*entity.RecurringTemplate
}

// ListTemplatesUseCase handles template listing logic.
type ListTemplatesUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(recurringRepo adapter.RecurringRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the template listing.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context, input ListTemplatesInput) (*ListTemplatesOutput, error) {
	templates, err := uc.recurringRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring templates: %w", err)
	}

	return &ListTemplatesOutput{
		Templates: templates,
	}, nil
}
