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

// CreateInvoiceInput represents the input for invoice creation.
type CreateInvoiceInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	DueDay      int
}

// CreateInvoiceOutput represents the output of invoice creation.
type CreateInvoiceOutput struct {
	Invoice *entity.Invoice
}

// CreateInvoiceUseCase handles invoice creation logic.
type CreateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewCreateInvoiceUseCase creates a new CreateInvoiceUseCase instance.
func NewCreateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute performs the invoice creation.
func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, input CreateInvoiceInput) (*CreateInvoiceOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewSchedulerError(
			domainerror.ErrCodeInvoiceNotFound,
			"invoice description is required",
			domainerror.ErrInvoiceNotFound,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewSchedulerError(
			domainerror.ErrCodeInvoiceNotFound,
			"invoice amount must be positive",
			domainerror.ErrInvoiceNotFound,
		)
	}

	if input.DueDay < 1 || input.DueDay > 31 {
		return nil, domainerror.NewSchedulerError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}

	invoice := entity.NewInvoice(input.UserID, description, input.Amount, input.DueDay)
	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	return &CreateInvoiceOutput{
		Invoice: invoice,
	}, nil
}
