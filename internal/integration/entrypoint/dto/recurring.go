// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CreateRecurringRequest represents the request body for recurring template creation.
type CreateRecurringRequest struct {
	Description  string  `json:"description" binding:"required,min=1,max=255"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Kind         string  `json:"kind" binding:"required,oneof=income expense"`
	Frequency    string  `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	CategoryID   *string `json:"category_id,omitempty"`
	WalletID     *string `json:"wallet_id,omitempty"`
	CreditCardID *string `json:"credit_card_id,omitempty"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      *string `json:"end_date,omitempty"`
}

// UpdateRecurringRequest represents the request body for recurring template update.
type UpdateRecurringRequest struct {
	Version     int      `json:"version" binding:"min=0"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Frequency   *string  `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly"`
	EndDate     *string  `json:"end_date,omitempty"`
	ClearEnd    bool     `json:"clear_end,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// RecurringResponse represents a single recurring template in API responses.
type RecurringResponse struct {
	ID              string     `json:"id"`
	Description     string     `json:"description"`
	Amount          string     `json:"amount"`
	Kind            string     `json:"kind"`
	Frequency       string     `json:"frequency"`
	CategoryID      *string    `json:"category_id,omitempty"`
	WalletID        *string    `json:"wallet_id,omitempty"`
	CreditCardID    *string    `json:"credit_card_id,omitempty"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	LastProcessedAt *time.Time `json:"last_processed_at,omitempty"`
	Active          bool       `json:"active"`
	Version         int        `json:"version"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// RecurringListResponse represents the response for listing recurring templates.
type RecurringListResponse struct {
	Templates []RecurringResponse `json:"templates"`
}

// SchedulerRunResponse summarizes one scheduler batch run.
type SchedulerRunResponse struct {
	Processed int      `json:"processed"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Details   []string `json:"details,omitempty"`
}

// ToRecurringResponse converts a domain RecurringTemplate entity to a RecurringResponse DTO.
func ToRecurringResponse(t *entity.RecurringTemplate) RecurringResponse {
	return RecurringResponse{
		ID:              t.ID.String(),
		Description:     t.Description,
		Amount:          t.Amount.String(),
		Kind:            string(t.Kind),
		Frequency:       string(t.Frequency),
		CategoryID:      uuidPtrToString(t.CategoryID),
		WalletID:        uuidPtrToString(t.WalletID),
		CreditCardID:    uuidPtrToString(t.CreditCardID),
		StartDate:       t.StartDate,
		EndDate:         t.EndDate,
		LastProcessedAt: t.LastProcessedAt,
		Active:          t.Active,
		Version:         t.Version,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToRecurringListResponse converts templates to a RecurringListResponse.
func ToRecurringListResponse(templates []*entity.RecurringTemplate) RecurringListResponse {
	responses := make([]RecurringResponse, len(templates))
	for i, t := range templates {
		responses[i] = ToRecurringResponse(t)
	}
	return RecurringListResponse{Templates: responses}
}
