// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditCard represents a credit card whose purchases are recorded as
// credit-method entries, possibly split into installments.
type CreditCard struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Brand           string
	Limit           decimal.Decimal
	ClosingDay      int
	DueDay          int
	PaymentWalletID *uuid.UUID // Default wallet used to pay the statement
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(userID uuid.UUID, name, brand string, limit decimal.Decimal, closingDay, dueDay int) *CreditCard {
	now := time.Now().UTC()

	return &CreditCard{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Brand:      brand,
		Limit:      limit,
		ClosingDay: closingDay,
		DueDay:     dueDay,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CreditCardWithInvoice represents a card with its open invoice total and
// the limit still available.
type CreditCardWithInvoice struct {
	CreditCard     *CreditCard
	OpenInvoice    decimal.Decimal
	AvailableLimit decimal.Decimal
}
