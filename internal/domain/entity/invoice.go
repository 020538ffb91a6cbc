// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is a recurring monthly bill tracked for due-date reminders,
// distinct from credit-card statements.
type Invoice struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Description   string
	Amount        decimal.Decimal
	DueDay        int // Day of month the invoice is due (1-31)
	LastPaymentAt *time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInvoice creates a new active Invoice entity.
func NewInvoice(userID uuid.UUID, description string, amount decimal.Decimal, dueDay int) *Invoice {
	now := time.Now().UTC()

	return &Invoice{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		DueDay:      dueDay,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// PaidInMonth reports whether the invoice was paid in the calendar month of
// the given reference date.
func (i *Invoice) PaidInMonth(ref time.Time) bool {
	return i.LastPaymentAt != nil &&
		i.LastPaymentAt.Month() == ref.Month() &&
		i.LastPaymentAt.Year() == ref.Year()
}
