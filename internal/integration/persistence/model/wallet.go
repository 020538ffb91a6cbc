// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

// WalletModel represents the wallets table in the database.
type WalletModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Type           string          `gorm:"type:varchar(20);not null"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the WalletModel.
func (WalletModel) TableName() string {
	return "wallets"
}

// ToEntity converts a WalletModel to a domain Wallet entity.
func (m *WalletModel) ToEntity() *entity.Wallet {
	return &entity.Wallet{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Type:           entity.WalletType(m.Type),
		InitialBalance: m.InitialBalance,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// WalletFromEntity creates a WalletModel from a domain Wallet entity.
func WalletFromEntity(wallet *entity.Wallet) *WalletModel {
	return &WalletModel{
		ID:             wallet.ID,
		UserID:         wallet.UserID,
		Name:           wallet.Name,
		Type:           string(wallet.Type),
		InitialBalance: wallet.InitialBalance,
		CreatedAt:      wallet.CreatedAt,
		UpdatedAt:      wallet.UpdatedAt,
	}
}

// CreditCardModel represents the credit_cards table in the database.
type CreditCardModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Brand           string          `gorm:"type:varchar(50)"`
	CardLimit       decimal.Decimal `gorm:"column:card_limit;type:decimal(15,2);not null"`
	ClosingDay      int             `gorm:"not null"`
	DueDay          int             `gorm:"not null"`
	PaymentWalletID *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CreditCardModel.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CreditCardModel to a domain CreditCard entity.
func (m *CreditCardModel) ToEntity() *entity.CreditCard {
	return &entity.CreditCard{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		Brand:           m.Brand,
		Limit:           m.CardLimit,
		ClosingDay:      m.ClosingDay,
		DueDay:          m.DueDay,
		PaymentWalletID: m.PaymentWalletID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// CreditCardFromEntity creates a CreditCardModel from a domain CreditCard entity.
func CreditCardFromEntity(card *entity.CreditCard) *CreditCardModel {
	return &CreditCardModel{
		ID:              card.ID,
		UserID:          card.UserID,
		Name:            card.Name,
		Brand:           card.Brand,
		CardLimit:       card.Limit,
		ClosingDay:      card.ClosingDay,
		DueDay:          card.DueDay,
		PaymentWalletID: card.PaymentWalletID,
		CreatedAt:       card.CreatedAt,
		UpdatedAt:       card.UpdatedAt,
	}
}
