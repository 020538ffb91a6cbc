// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

// RecurringTemplateModel represents the recurring_templates table in the database.
type RecurringTemplateModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description     string          `gorm:"type:varchar(255);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind            string          `gorm:"type:varchar(10);not null"`
	Frequency       string          `gorm:"type:varchar(10);not null"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid"`
	WalletID        *uuid.UUID      `gorm:"type:uuid"`
	CreditCardID    *uuid.UUID      `gorm:"type:uuid"`
	StartDate       time.Time       `gorm:"type:date;not null"`
	EndDate         *time.Time      `gorm:"type:date"`
	LastProcessedAt *time.Time      `gorm:"type:date"`
	Active          bool            `gorm:"default:true;index"`
	Version         int             `gorm:"not null;default:1"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringTemplateModel.
func (RecurringTemplateModel) TableName() string {
	return "recurring_templates"
}

// ToEntity converts a RecurringTemplateModel to a domain entity.
func (m *RecurringTemplateModel) ToEntity() *entity.RecurringTemplate {
	return &entity.RecurringTemplate{
		ID:              m.ID,
		UserID:          m.UserID,
		Description:     m.Description,
		Amount:          m.Amount,
		Kind:            entity.EntryKind(m.Kind),
		Frequency:       entity.Frequency(m.Frequency),
		CategoryID:      m.CategoryID,
		WalletID:        m.WalletID,
		CreditCardID:    m.CreditCardID,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		LastProcessedAt: m.LastProcessedAt,
		Active:          m.Active,
		Version:         m.Version,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// RecurringTemplateFromEntity creates a RecurringTemplateModel from a domain entity.
func RecurringTemplateFromEntity(template *entity.RecurringTemplate) *RecurringTemplateModel {
	return &RecurringTemplateModel{
		ID:              template.ID,
		UserID:          template.UserID,
		Description:     template.Description,
		Amount:          template.Amount,
		Kind:            string(template.Kind),
		Frequency:       string(template.Frequency),
		CategoryID:      template.CategoryID,
		WalletID:        template.WalletID,
		CreditCardID:    template.CreditCardID,
		StartDate:       template.StartDate,
		EndDate:         template.EndDate,
		LastProcessedAt: template.LastProcessedAt,
		Active:          template.Active,
		Version:         template.Version,
		CreatedAt:       template.CreatedAt,
		UpdatedAt:       template.UpdatedAt,
	}
}

// InvoiceModel represents the invoices table in the database.
type InvoiceModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDay        int             `gorm:"not null"`
	LastPaymentAt *time.Time
	Active        bool            `gorm:"default:true;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToEntity converts an InvoiceModel to a domain Invoice entity.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	return &entity.Invoice{
		ID:            m.ID,
		UserID:        m.UserID,
		Description:   m.Description,
		Amount:        m.Amount,
		DueDay:        m.DueDay,
		LastPaymentAt: m.LastPaymentAt,
		Active:        m.Active,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// InvoiceFromEntity creates an InvoiceModel from a domain Invoice entity.
func InvoiceFromEntity(invoice *entity.Invoice) *InvoiceModel {
	return &InvoiceModel{
		ID:            invoice.ID,
		UserID:        invoice.UserID,
		Description:   invoice.Description,
		Amount:        invoice.Amount,
		DueDay:        invoice.DueDay,
		LastPaymentAt: invoice.LastPaymentAt,
		Active:        invoice.Active,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}
}
