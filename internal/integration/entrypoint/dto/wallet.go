// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	Type           string  `json:"type" binding:"required,oneof=checking cash savings investment"`
	InitialBalance float64 `json:"initial_balance"`
}

// UpdateWalletRequest represents the request body for wallet update.
type UpdateWalletRequest struct {
	Name           *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type           *string  `json:"type,omitempty" binding:"omitempty,oneof=checking cash savings investment"`
	InitialBalance *float64 `json:"initial_balance,omitempty"`
}

// WalletResponse represents a single wallet in API responses.
type WalletResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	InitialBalance string    `json:"initial_balance"`
	Balance        string    `json:"balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// WalletListResponse represents the response for listing wallets.
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// ToWalletResponse converts a domain Wallet entity to a WalletResponse DTO.
// The balance equals the initial balance until derived separately.
func ToWalletResponse(w *entity.Wallet) WalletResponse {
	return WalletResponse{
		ID:             w.ID.String(),
		Name:           w.Name,
		Type:           string(w.Type),
		InitialBalance: w.InitialBalance.String(),
		Balance:        w.InitialBalance.String(),
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

// ToWalletListResponse converts wallets with balances to a WalletListResponse.
func ToWalletListResponse(wallets []*entity.WalletWithBalance) WalletListResponse {
	responses := make([]WalletResponse, len(wallets))
	for i, wb := range wallets {
		responses[i] = ToWalletResponse(wb.Wallet)
		responses[i].Balance = wb.Balance.String()
	}
	return WalletListResponse{Wallets: responses}
}
