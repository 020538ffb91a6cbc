// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultBudgetAlertPercent is the spending percentage at which a budget
// starts flagging.
const DefaultBudgetAlertPercent = 80

// Budget represents a monthly spending limit for one category.
type Budget struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	LimitAmount  decimal.Decimal
	Month        int // 1-12
	Year         int
	AlertPercent int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, limitAmount decimal.Decimal, month, year, alertPercent int) *Budget {
	now := time.Now().UTC()

	if alertPercent <= 0 {
		alertPercent = DefaultBudgetAlertPercent
	}

	return &Budget{
		ID:           uuid.New(),
		UserID:       userID,
		CategoryID:   categoryID,
		LimitAmount:  limitAmount,
		Month:        month,
		Year:         year,
		AlertPercent: alertPercent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// BudgetWithStatus represents a budget with the amount already spent in its
// month and whether the alert threshold has been crossed.
type BudgetWithStatus struct {
	Budget       *Budget
	Category     *Category
	Spent        decimal.Decimal
	UsagePercent int
	Alerting     bool
}
