// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often a recurring template fires.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringSuffix is appended to the description of entries materialized
// from a recurring template.
const RecurringSuffix = " (Recorrente)"

// RecurringTemplate is a rule that periodically materializes new entries
// (subscriptions, salaries, rent). LastProcessedAt is advanced only by the
// scheduler; templates are never deleted automatically.
type RecurringTemplate struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Description     string
	Amount          decimal.Decimal
	Kind            EntryKind
	Frequency       Frequency
	CategoryID      *uuid.UUID
	WalletID        *uuid.UUID
	CreditCardID    *uuid.UUID
	StartDate       time.Time
	EndDate         *time.Time // Nil means indefinitely
	LastProcessedAt *time.Time
	Active          bool
	Version         int // Optimistic concurrency token
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewRecurringTemplate creates a new active RecurringTemplate entity.
func NewRecurringTemplate(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	kind EntryKind,
	frequency Frequency,
	startDate time.Time,
	endDate *time.Time,
) *RecurringTemplate {
	now := time.Now().UTC()

	return &RecurringTemplate{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Frequency:   frequency,
		StartDate:   startDate,
		EndDate:     endDate,
		Active:      true,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Materialize builds the concrete entry produced when the template is due at
// the given date. Expense entries start unpaid; income entries are treated
// as settled on receipt.
func (t *RecurringTemplate) Materialize(dueDate time.Time) *Entry {
	paymentMethod := PaymentMethodDebit
	if t.CreditCardID != nil {
		paymentMethod = PaymentMethodCredit
	}

	entry := NewEntry(
		t.UserID,
		t.Kind,
		t.Description+RecurringSuffix,
		t.Amount,
		dueDate,
		paymentMethod,
		1,
		1,
	)
	entry.CategoryID = t.CategoryID
	entry.WalletID = t.WalletID
	entry.CreditCardID = t.CreditCardID
	if t.Kind == EntryKindIncome {
		entry.InstallmentsPaid = 1
	}

	return entry
}
