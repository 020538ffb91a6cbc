// Package invoice contains use cases for recurring bill invoices and their
// due-date reminders.
package invoice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// UpdateInvoiceInput represents the input for invoice update. Nil pointers
// leave the corresponding field untouched.
type UpdateInvoiceInput struct {
	InvoiceID   uuid.UUID
	UserID      uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	DueDay      *int
	Active      *bool
}

// UpdateInvoiceOutput represents the output of invoice update.
type UpdateInvoiceOutput struct {
	Invoice *entity.Invoice
}

// UpdateInvoiceUseCase handles invoice update logic.
type UpdateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewUpdateInvoiceUseCase creates a new UpdateInvoiceUseCase instance.
func NewUpdateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *UpdateInvoiceUseCase {
	return &UpdateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute performs the invoice update.
func (uc *UpdateInvoiceUseCase) Execute(ctx context.Context, input UpdateInvoiceInput) (*UpdateInvoiceOutput, error) {
	invoice, err := uc.invoiceRepo.FindByOwner(ctx, input.InvoiceID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, domainerror.NewSchedulerError(
				domainerror.ErrCodeInvoiceNotFound,
				"invoice description is required",
				domainerror.ErrInvoiceNotFound,
			)
		}
		invoice.Description = description
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewSchedulerError(
				domainerror.ErrCodeInvoiceNotFound,
				"invoice amount must be positive",
				domainerror.ErrInvoiceNotFound,
			)
		}
		invoice.Amount = *input.Amount
	}
	if input.DueDay != nil {
		if *input.DueDay < 1 || *input.DueDay > 31 {
			return nil, domainerror.NewSchedulerError(
				domainerror.ErrCodeInvalidDueDay,
				"due day must be between 1 and 31",
				domainerror.ErrInvalidDueDay,
			)
		}
		invoice.DueDay = *input.DueDay
	}
	if input.Active != nil {
		invoice.Active = *input.Active
	}

	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	return &UpdateInvoiceOutput{
		Invoice: invoice,
	}, nil
}
