// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID   string  `json:"category_id" binding:"required,uuid"`
	LimitAmount  float64 `json:"limit_amount" binding:"required,gt=0"`
	Month        int     `json:"month" binding:"required,min=1,max=12"`
	Year         int     `json:"year" binding:"required,min=2000"`
	AlertPercent int     `json:"alert_percent,omitempty" binding:"omitempty,min=1,max=100"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	LimitAmount  *float64 `json:"limit_amount,omitempty" binding:"omitempty,gt=0"`
	AlertPercent *int     `json:"alert_percent,omitempty" binding:"omitempty,min=1,max=100"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID           string            `json:"id"`
	CategoryID   string            `json:"category_id"`
	Category     *CategoryResponse `json:"category,omitempty"`
	LimitAmount  string            `json:"limit_amount"`
	Month        int               `json:"month"`
	Year         int               `json:"year"`
	AlertPercent int               `json:"alert_percent"`
	Spent        string            `json:"spent"`
	UsagePercent int               `json:"usage_percent"`
	Alerting     bool              `json:"alerting"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:           b.ID.String(),
		CategoryID:   b.CategoryID.String(),
		LimitAmount:  b.LimitAmount.String(),
		Month:        b.Month,
		Year:         b.Year,
		AlertPercent: b.AlertPercent,
		Spent:        "0",
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// ToBudgetListResponse converts budgets with status to a BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.BudgetWithStatus) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, bs := range budgets {
		responses[i] = ToBudgetResponse(bs.Budget)
		responses[i].Spent = bs.Spent.String()
		responses[i].UsagePercent = bs.UsagePercent
		responses[i].Alerting = bs.Alerting
		if bs.Category != nil {
			cat := ToCategoryResponse(bs.Category)
			responses[i].Category = &cat
		}
	}
	return BudgetListResponse{Budgets: responses}
}
