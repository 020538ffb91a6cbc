// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CreateCreditCardRequest represents the request body for credit card creation.
type CreateCreditCardRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=100"`
	Brand           string  `json:"brand,omitempty"`
	Limit           float64 `json:"limit" binding:"required,gt=0"`
	ClosingDay      int     `json:"closing_day" binding:"required,min=1,max=31"`
	DueDay          int     `json:"due_day" binding:"required,min=1,max=31"`
	PaymentWalletID *string `json:"payment_wallet_id,omitempty"`
}

// UpdateCreditCardRequest represents the request body for credit card update.
type UpdateCreditCardRequest struct {
	Name            *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Brand           *string  `json:"brand,omitempty"`
	Limit           *float64 `json:"limit,omitempty" binding:"omitempty,gt=0"`
	ClosingDay      *int     `json:"closing_day,omitempty" binding:"omitempty,min=1,max=31"`
	DueDay          *int     `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
	PaymentWalletID *string  `json:"payment_wallet_id,omitempty"`
}

// CreditCardResponse represents a single credit card in API responses.
type CreditCardResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Brand           string    `json:"brand"`
	Limit           string    `json:"limit"`
	ClosingDay      int       `json:"closing_day"`
	DueDay          int       `json:"due_day"`
	PaymentWalletID *string   `json:"payment_wallet_id,omitempty"`
	OpenInvoice     string    `json:"open_invoice"`
	AvailableLimit  string    `json:"available_limit"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreditCardListResponse represents the response for listing credit cards.
type CreditCardListResponse struct {
	Cards []CreditCardResponse `json:"cards"`
}

// ToCreditCardResponse converts a domain CreditCard entity to a CreditCardResponse DTO.
func ToCreditCardResponse(card *entity.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:              card.ID.String(),
		Name:            card.Name,
		Brand:           card.Brand,
		Limit:           card.Limit.String(),
		ClosingDay:      card.ClosingDay,
		DueDay:          card.DueDay,
		PaymentWalletID: uuidPtrToString(card.PaymentWalletID),
		OpenInvoice:     "0",
		AvailableLimit:  card.Limit.String(),
		CreatedAt:       card.CreatedAt,
		UpdatedAt:       card.UpdatedAt,
	}
}

// ToCreditCardListResponse converts cards with invoice totals to a CreditCardListResponse.
func ToCreditCardListResponse(cards []*entity.CreditCardWithInvoice) CreditCardListResponse {
	responses := make([]CreditCardResponse, len(cards))
	for i, ci := range cards {
		responses[i] = ToCreditCardResponse(ci.CreditCard)
		responses[i].OpenInvoice = ci.OpenInvoice.String()
		responses[i].AvailableLimit = ci.AvailableLimit.String()
	}
	return CreditCardListResponse{Cards: responses}
}
