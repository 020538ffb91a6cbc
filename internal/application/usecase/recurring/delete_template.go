// Package recurring contains use cases for recurring entry templates.
package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// DeleteTemplateInput represents the input for template deletion.
type DeleteTemplateInput struct {
	TemplateID uuid.UUID
	UserID     uuid.UUID
}

// DeleteTemplateUseCase deactivates a template. Templates are soft-disabled
// rather than removed so already-materialized entries keep their lineage.
type DeleteTemplateUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewDeleteTemplateUseCase creates a new DeleteTemplateUseCase instance.
func NewDeleteTemplateUseCase(recurringRepo adapter.RecurringRepository) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the template deactivation.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, input DeleteTemplateInput) error {
	template, err := uc.recurringRepo.FindByOwner(ctx, input.TemplateID, input.UserID)
	if err != nil {
		return err
	}

	template.Active = false
	if err := uc.recurringRepo.Update(ctx, template); err != nil {
		return fmt.Errorf("failed to deactivate recurring template: %w", err)
	}

	return nil
}
