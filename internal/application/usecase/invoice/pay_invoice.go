// Package invoice contains use cases for recurring bill invoices and their
package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// PayInvoiceInput represents the input for marking an invoice paid.
type PayInvoiceInput struct {
	InvoiceID uuid.UUID
	UserID    uuid.UUID
	PaidAt    time.Time
}

// PayInvoiceOutput represents the output of marking an invoice paid.
type PayInvoiceOutput struct {
	Invoice *entity.Invoice
}

// PayInvoiceUseCase records a payment on an invoice, silencing reminders for
// the rest of the calendar month.
type PayInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewPayInvoiceUseCase creates a new PayInvoiceUseCase instance.
func NewPayInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *PayInvoiceUseCase {
	return &PayInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute records the payment.
func (uc *PayInvoiceUseCase) Execute(ctx context.Context, input PayInvoiceInput) (*PayInvoiceOutput, error) {
	invoice, err := uc.invoiceRepo.FindByOwner(ctx, input.InvoiceID, input.UserID)
	if err != nil {
		return nil, err
	}

	paidAt := input.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}
	invoice.LastPaymentAt = &paidAt

	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to record invoice payment: %w", err)
	}

	return &PayInvoiceOutput{
		Invoice: invoice,
	}, nil
}
