// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletType represents the kind of account a wallet stands for.
type WalletType string

const (
	WalletTypeChecking   WalletType = "checking"
	WalletTypeCash       WalletType = "cash"
	WalletTypeSavings    WalletType = "savings"
	WalletTypeInvestment WalletType = "investment"
)

// Wallet represents a money account owned by a user. The current balance is
// derived: InitialBalance plus the net of debit entries referencing it.
type Wallet struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           WalletType
	InitialBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewWallet creates a new Wallet entity.
func NewWallet(userID uuid.UUID, name string, walletType WalletType, initialBalance decimal.Decimal) *Wallet {
	now := time.Now().UTC()

	return &Wallet{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Type:           walletType,
		InitialBalance: initialBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WalletWithBalance represents a wallet together with its derived balance.
type WalletWithBalance struct {
	Wallet  *Wallet
	Balance decimal.Decimal
}
