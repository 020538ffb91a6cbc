// Package recurring contains use cases for recurring entry templates.
package recurring

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

// CreateTemplateInput represents the input for template creation.
type CreateTemplateInput struct {
	UserID       uuid.UUID
	Description  string
	Amount       decimal.Decimal
	Kind         entity.EntryKind
	Frequency    entity.Frequency
	CategoryID   *uuid.UUID
	WalletID     *uuid.UUID
	CreditCardID *uuid.UUID
	StartDate    time.Time
	EndDate      *time.Time
}

// CreateTemplateOutput represents the output of template creation.
type CreateTemplateOutput struct {
	Template *entity.RecurringTemplate
}

// CreateTemplateUseCase handles recurring template creation logic.
type CreateTemplateUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase instance.
func NewCreateTemplateUseCase(recurringRepo adapter.RecurringRepository) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the template creation.
func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*CreateTemplateOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewSchedulerError(
			domainerror.ErrCodeRecurringNotFound,
			"template description is required",
			domainerror.ErrRecurringNotFound,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewSchedulerError(
			domainerror.ErrCodeRecurringNotFound,
			"template amount must be positive",
			domainerror.ErrRecurringNotFound,
		)
	}

	if !isValidFrequency(input.Frequency) {
		return nil, domainerror.NewSchedulerError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be 'daily', 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidFrequency,
		)
	}

	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewSchedulerError(
			domainerror.ErrCodeRecurringNotFound,
			"end date cannot precede the start date",
			domainerror.ErrRecurringNotFound,
		)
	}

	template := entity.NewRecurringTemplate(
		input.UserID,
		description,
		input.Amount,
		input.Kind,
		input.Frequency,
		input.StartDate,
		input.EndDate,
	)
	template.CategoryID = input.CategoryID
	template.WalletID = input.WalletID
	template.CreditCardID = input.CreditCardID

	if err := uc.recurringRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create recurring template: %w", err)
	}

	return &CreateTemplateOutput{
		Template: template,
	}, nil
}

func isValidFrequency(f entity.Frequency) bool {
	switch f {
	case entity.FrequencyDaily, entity.FrequencyWeekly, entity.FrequencyMonthly, entity.FrequencyYearly:
		return true
	}
	return false
}
