// Package recurring contains use cases for recurring entry templates.
package recurring

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// UpdateTemplateInput represents the input for template update. Nil pointers
// leave the corresponding field untouched. Version must match the stored row
// or the update is rejected as a conflict.
type UpdateTemplateInput struct {
	TemplateID  uuid.UUID
	UserID      uuid.UUID
	Version     int
	Description *string
	Amount      *decimal.Decimal
	Frequency   *entity.Frequency
	EndDate     *time.Time
	ClearEnd    bool
	Active      *bool
}

// UpdateTemplateOutput represents the output of template update.
type UpdateTemplateOutput struct {
	Template *entity.RecurringTemplate
}

// UpdateTemplateUseCase handles template update logic. The scheduler races
// user edits, so updates are version-guarded.
type UpdateTemplateUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewUpdateTemplateUseCase creates a new UpdateTemplateUseCase instance.
func NewUpdateTemplateUseCase(recurringRepo adapter.RecurringRepository) *UpdateTemplateUseCase {
	return &UpdateTemplateUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the template update.
func (uc *UpdateTemplateUseCase) Execute(ctx context.Context, input UpdateTemplateInput) (*UpdateTemplateOutput, error) {
	template, err := uc.recurringRepo.FindByOwner(ctx, input.TemplateID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Version != template.Version {
		return nil, domainerror.NewSchedulerError(
			domainerror.ErrCodeRecurringConflict,
			"recurring template was modified concurrently",
			domainerror.ErrRecurringConflict,
		)
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, domainerror.NewSchedulerError(
				domainerror.ErrCodeRecurringNotFound,
				"template description is required",
				domainerror.ErrRecurringNotFound,
			)
		}
		template.Description = description
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewSchedulerError(
				domainerror.ErrCodeRecurringNotFound,
				"template amount must be positive",
				domainerror.ErrRecurringNotFound,
			)
		}
		template.Amount = *input.Amount
	}
	if input.Frequency != nil {
		if !isValidFrequency(*input.Frequency) {
			return nil, domainerror.NewSchedulerError(
				domainerror.ErrCodeInvalidFrequency,
				"frequency must be 'daily', 'weekly', 'monthly' or 'yearly'",
				domainerror.ErrInvalidFrequency,
			)
		}
		template.Frequency = *input.Frequency
	}
	if input.ClearEnd {
		template.EndDate = nil
	} else if input.EndDate != nil {
		if input.EndDate.Before(template.StartDate) {
			return nil, domainerror.NewSchedulerError(
				domainerror.ErrCodeRecurringNotFound,
				"end date cannot precede the start date",
				domainerror.ErrRecurringNotFound,
			)
		}
		template.EndDate = input.EndDate
	}
	if input.Active != nil {
		template.Active = *input.Active
	}

	if err := uc.recurringRepo.Update(ctx, template); err != nil {
		return nil, err
	}

	return &UpdateTemplateOutput{
		Template: template,
	}, nil
}
