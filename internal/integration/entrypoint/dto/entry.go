// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-app/backend/internal/application/usecase/entry"
	"github.com/finance-app/backend/internal/domain/entity"
)

// CreateEntryRequest represents the request body for entry creation.
type CreateEntryRequest struct {
	Kind                string  `json:"kind" binding:"required,oneof=income expense"`
	Description         string  `json:"description" binding:"required,min=1,max=255"`
	Amount              float64 `json:"amount" binding:"required,gt=0"`
	Date                string  `json:"date" binding:"required"`
	PaymentMethod       string  `json:"payment_method" binding:"required,oneof=debit credit"`
	InstallmentCount    int     `json:"installment_count,omitempty"`
	StartingInstallment int     `json:"starting_installment,omitempty"`
	CategoryID          *string `json:"category_id,omitempty"`
	WalletID            *string `json:"wallet_id,omitempty"`
	CreditCardID        *string `json:"credit_card_id,omitempty"`
	GoalID              *string `json:"goal_id,omitempty"`
}

// UpdateEntryRequest represents the request body for entry update.
type UpdateEntryRequest struct {
	Version          int      `json:"version" binding:"min=0"`
	Description      *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount           *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Date             *string  `json:"date,omitempty"`
	CategoryID       *string  `json:"category_id,omitempty"`
	InstallmentsPaid *int     `json:"installments_paid,omitempty"`
}

// EntryResponse represents a single entry in API responses.
type EntryResponse struct {
	ID                  string            `json:"id"`
	Kind                string            `json:"kind"`
	Description         string            `json:"description"`
	Amount              string            `json:"amount"`
	Date                time.Time         `json:"date"`
	PaymentMethod       string            `json:"payment_method"`
	InstallmentCount    int               `json:"installment_count"`
	StartingInstallment int               `json:"starting_installment"`
	InstallmentsPaid    int               `json:"installments_paid"`
	CategoryID          *string           `json:"category_id,omitempty"`
	WalletID            *string           `json:"wallet_id,omitempty"`
	CreditCardID        *string           `json:"credit_card_id,omitempty"`
	GoalID              *string           `json:"goal_id,omitempty"`
	Category            *CategoryResponse `json:"category,omitempty"`
	Version             int               `json:"version"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// EntryListResponse represents the response for listing entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// SummaryResponse represents period totals.
type SummaryResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// StatementLineResponse is one projected occurrence in a statement.
type StatementLineResponse struct {
	EntryID     string            `json:"entry_id"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	Amount      string            `json:"amount"`
	Kind        string            `json:"kind"`
	Label       string            `json:"label,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
}

// StatementResponse represents the response for the statement endpoint.
type StatementResponse struct {
	Lines        []StatementLineResponse `json:"lines"`
	IncomeTotal  string                  `json:"income_total"`
	ExpenseTotal string                  `json:"expense_total"`
}

// ToEntryResponse converts a domain Entry entity to an EntryResponse DTO.
func ToEntryResponse(e *entity.Entry) EntryResponse {
	return EntryResponse{
		ID:                  e.ID.String(),
		Kind:                string(e.Kind),
		Description:         e.Description,
		Amount:              e.Amount.String(),
		Date:                e.Date,
		PaymentMethod:       string(e.PaymentMethod),
		InstallmentCount:    e.InstallmentCount,
		StartingInstallment: e.StartingInstallment,
		InstallmentsPaid:    e.InstallmentsPaid,
		CategoryID:          uuidPtrToString(e.CategoryID),
		WalletID:            uuidPtrToString(e.WalletID),
		CreditCardID:        uuidPtrToString(e.CreditCardID),
		GoalID:              uuidPtrToString(e.GoalID),
		Version:             e.Version,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

// ToEntryListResponse converts entries with categories to an EntryListResponse.
func ToEntryListResponse(entries []*entity.EntryWithCategory) EntryListResponse {
	responses := make([]EntryResponse, len(entries))
	for i, ec := range entries {
		responses[i] = ToEntryResponse(ec.Entry)
		if ec.Category != nil {
			cat := ToCategoryResponse(ec.Category)
			responses[i].Category = &cat
		}
	}
	return EntryListResponse{Entries: responses}
}

// ToSummaryResponse converts entry totals to a SummaryResponse.
func ToSummaryResponse(totals *entity.EntryTotals) SummaryResponse {
	return SummaryResponse{
		IncomeTotal:  totals.IncomeTotal.String(),
		ExpenseTotal: totals.ExpenseTotal.String(),
		NetTotal:     totals.NetTotal.String(),
	}
}

// ToStatementResponse converts a statement output to a StatementResponse.
func ToStatementResponse(output *entry.GetStatementOutput) StatementResponse {
	lines := make([]StatementLineResponse, len(output.Lines))
	for i, line := range output.Lines {
		lines[i] = StatementLineResponse{
			EntryID:     line.EntryID.String(),
			Date:        line.Date,
			Description: line.Description,
			Amount:      line.Amount.String(),
			Kind:        string(line.Kind),
			Label:       line.Label,
		}
		if line.Category != nil {
			cat := ToCategoryResponse(line.Category)
			lines[i].Category = &cat
		}
	}
	return StatementResponse{
		Lines:        lines,
		IncomeTotal:  output.IncomeTotal.String(),
		ExpenseTotal: output.ExpenseTotal.String(),
	}
}
