// Package invoice contains use cases for recurring bill invoices and their
package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// DeleteInvoiceInput represents the input for invoice deletion.
type DeleteInvoiceInput struct {
	InvoiceID uuid.UUID
	UserID    uuid.UUID
}

// DeleteInvoiceUseCase handles invoice deletion logic.
type DeleteInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewDeleteInvoiceUseCase creates a new DeleteInvoiceUseCase instance.
func NewDeleteInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *DeleteInvoiceUseCase {
	return &DeleteInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute performs the invoice deletion.
func (uc *DeleteInvoiceUseCase) Execute(ctx context.Context, input DeleteInvoiceInput) error {
	if _, err := uc.invoiceRepo.FindByOwner(ctx, input.InvoiceID, input.UserID); err != nil {
		return err
	}

	if err := uc.invoiceRepo.Delete(ctx, input.InvoiceID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	return nil
}
