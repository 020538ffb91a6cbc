// Package invoice contains use cases for recurring bill invoices and their
// due-date reminders.
package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/domain/schedule"
)

// InvoiceWithStatus is an invoice annotated with its due date this month and
// reminder state, computed against a reference day.
type InvoiceWithStatus struct {
	Invoice       *entity.Invoice
	DueDate       time.Time
	DaysUntilDue  int
	PaidThisMonth bool
	Severity      schedule.ReminderSeverity
}

// ListInvoicesInput represents the input for listing invoices.
type ListInvoicesInput struct {
	UserID uuid.UUID
	Today  time.Time
}

// ListInvoicesOutput represents the output of listing invoices.
type ListInvoicesOutput struct {
	Invoices []*InvoiceWithStatus
}

// ListInvoicesUseCase lists the user's invoices with their current month
// status.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(invoiceRepo adapter.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute performs the invoice listing.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, input ListInvoicesInput) (*ListInvoicesOutput, error) {
	invoices, err := uc.invoiceRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	result := make([]*InvoiceWithStatus, 0, len(invoices))
	for _, inv := range invoices {
		days := schedule.DaysUntilDue(inv, input.Today)
		result = append(result, &InvoiceWithStatus{
			Invoice:       inv,
			DueDate:       schedule.DueDateThisMonth(inv, input.Today),
			DaysUntilDue:  days,
			PaidThisMonth: inv.PaidInMonth(input.Today),
			Severity:      schedule.Severity(days),
		})
	}

	return &ListInvoicesOutput{
		Invoices: result,
	}, nil
}
