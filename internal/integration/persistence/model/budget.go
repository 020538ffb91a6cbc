// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_budgets_user_period"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null"`
	LimitAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Month        int             `gorm:"not null;index:idx_budgets_user_period"`
	Year         int             `gorm:"not null;index:idx_budgets_user_period"`
	AlertPercent int             `gorm:"not null;default:80"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:           m.ID,
		UserID:       m.UserID,
		CategoryID:   m.CategoryID,
		LimitAmount:  m.LimitAmount,
		Month:        m.Month,
		Year:         m.Year,
		AlertPercent: m.AlertPercent,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:           budget.ID,
		UserID:       budget.UserID,
		CategoryID:   budget.CategoryID,
		LimitAmount:  budget.LimitAmount,
		Month:        budget.Month,
		Year:         budget.Year,
		AlertPercent: budget.AlertPercent,
		CreatedAt:    budget.CreatedAt,
		UpdatedAt:    budget.UpdatedAt,
	}
}
