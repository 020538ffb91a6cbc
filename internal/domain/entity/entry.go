// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind represents the direction of a financial entry.
type EntryKind string

const (
	EntryKindIncome  EntryKind = "income"
	EntryKindExpense EntryKind = "expense"
)

// PaymentMethod represents how an entry was paid.
type PaymentMethod string

const (
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodCredit PaymentMethod = "credit"
)

// Entry represents a single recorded financial movement. An entry with
// InstallmentCount > 1 and a credit payment method stands for the first
// stored installment of a multi-installment purchase; the remaining
// occurrences are projected at read time, never stored.
type Entry struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Kind                EntryKind
	Description         string
	Amount              decimal.Decimal // Always positive; Kind carries the sign
	Date                time.Time
	PaymentMethod       PaymentMethod
	InstallmentCount    int
	StartingInstallment int
	InstallmentsPaid    int
	CategoryID          *uuid.UUID
	WalletID            *uuid.UUID
	CreditCardID        *uuid.UUID
	GoalID              *uuid.UUID
	Version             int // Optimistic concurrency token
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewEntry creates a new Entry entity with a fresh ID and timestamps.
func NewEntry(
	userID uuid.UUID,
	kind EntryKind,
	description string,
	amount decimal.Decimal,
	date time.Time,
	paymentMethod PaymentMethod,
	installmentCount int,
	startingInstallment int,
) *Entry {
	now := time.Now().UTC()

	if installmentCount < 1 {
		installmentCount = 1
	}
	if startingInstallment < 1 {
		startingInstallment = 1
	}

	return &Entry{
		ID:                  uuid.New(),
		UserID:              userID,
		Kind:                kind,
		Description:         description,
		Amount:              amount,
		Date:                date,
		PaymentMethod:       paymentMethod,
		InstallmentCount:    installmentCount,
		StartingInstallment: startingInstallment,
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// EntryWithCategory represents an entry with its associated category.
type EntryWithCategory struct {
	Entry    *Entry
	Category *Category
}

// EntryTotals represents aggregated totals for a set of entries.
type EntryTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}
