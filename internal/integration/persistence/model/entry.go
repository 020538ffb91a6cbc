// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

// EntryModel represents the entries table in the database.
type EntryModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind                string          `gorm:"type:varchar(10);not null;index"`
	Description         string          `gorm:"type:varchar(255);not null"`
	Amount              decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date                time.Time       `gorm:"type:date;not null;index"`
	PaymentMethod       string          `gorm:"type:varchar(10);not null"`
	InstallmentCount    int             `gorm:"not null;default:1"`
	StartingInstallment int             `gorm:"not null;default:1"`
	InstallmentsPaid    int             `gorm:"not null;default:0"`
	CategoryID          *uuid.UUID      `gorm:"type:uuid;index"`
	WalletID            *uuid.UUID      `gorm:"type:uuid;index"`
	CreditCardID        *uuid.UUID      `gorm:"type:uuid;index"`
	GoalID              *uuid.UUID      `gorm:"type:uuid;index"`
	Version             int             `gorm:"not null;default:1"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity.
func (m *EntryModel) ToEntity() *entity.Entry {
	return &entity.Entry{
		ID:                  m.ID,
		UserID:              m.UserID,
		Kind:                entity.EntryKind(m.Kind),
		Description:         m.Description,
		Amount:              m.Amount,
		Date:                m.Date,
		PaymentMethod:       entity.PaymentMethod(m.PaymentMethod),
		InstallmentCount:    m.InstallmentCount,
		StartingInstallment: m.StartingInstallment,
		InstallmentsPaid:    m.InstallmentsPaid,
		CategoryID:          m.CategoryID,
		WalletID:            m.WalletID,
		CreditCardID:        m.CreditCardID,
		GoalID:              m.GoalID,
		Version:             m.Version,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// ToEntityWithCategory converts an EntryModel with its Category preloaded.
func (m *EntryModel) ToEntityWithCategory() *entity.EntryWithCategory {
	result := &entity.EntryWithCategory{
		Entry: m.ToEntity(),
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// EntryFromEntity creates an EntryModel from a domain Entry entity.
func EntryFromEntity(entry *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:                  entry.ID,
		UserID:              entry.UserID,
		Kind:                string(entry.Kind),
		Description:         entry.Description,
		Amount:              entry.Amount,
		Date:                entry.Date,
		PaymentMethod:       string(entry.PaymentMethod),
		InstallmentCount:    entry.InstallmentCount,
		StartingInstallment: entry.StartingInstallment,
		InstallmentsPaid:    entry.InstallmentsPaid,
		CategoryID:          entry.CategoryID,
		WalletID:            entry.WalletID,
		CreditCardID:        entry.CreditCardID,
		GoalID:              entry.GoalID,
		Version:             entry.Version,
		CreatedAt:           entry.CreatedAt,
		UpdatedAt:           entry.UpdatedAt,
	}
}
