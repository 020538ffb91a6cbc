// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-app/backend/internal/application/usecase/invoice"
	"github.com/finance-app/backend/internal/domain/entity"
)

// CreateInvoiceRequest represents the request body for invoice creation.
type CreateInvoiceRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	DueDay      int     `json:"due_day" binding:"required,min=1,max=31"`
}

// UpdateInvoiceRequest represents the request body for invoice update.
type UpdateInvoiceRequest struct {
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	DueDay      *int     `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
	Active      *bool    `json:"active,omitempty"`
}

// InvoiceResponse represents a single invoice in API responses.
type InvoiceResponse struct {
	ID            string     `json:"id"`
	Description   string     `json:"description"`
	Amount        string     `json:"amount"`
	DueDay        int        `json:"due_day"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	DaysUntilDue  *int       `json:"days_until_due,omitempty"`
	PaidThisMonth bool       `json:"paid_this_month"`
	Severity      string     `json:"severity,omitempty"`
	LastPaymentAt *time.Time `json:"last_payment_at,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// InvoiceListResponse represents the response for listing invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ReminderRunResponse summarizes one reminder batch run.
type ReminderRunResponse struct {
	UsersNotified int      `json:"users_notified"`
	InvoicesDue   int      `json:"invoices_due"`
	Failed        int      `json:"failed"`
	Details       []string `json:"details,omitempty"`
}

// ToInvoiceResponse converts a domain Invoice entity to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID.String(),
		Description:   inv.Description,
		Amount:        inv.Amount.String(),
		DueDay:        inv.DueDay,
		LastPaymentAt: inv.LastPaymentAt,
		Active:        inv.Active,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

// ToInvoiceListResponse converts invoices with status to an InvoiceListResponse.
func ToInvoiceListResponse(invoices []*invoice.InvoiceWithStatus) InvoiceListResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i, is := range invoices {
		responses[i] = ToInvoiceResponse(is.Invoice)
		dueDate := is.DueDate
		days := is.DaysUntilDue
		responses[i].DueDate = &dueDate
		responses[i].DaysUntilDue = &days
		responses[i].PaidThisMonth = is.PaidThisMonth
		responses[i].Severity = string(is.Severity)
	}
	return InvoiceListResponse{Invoices: responses}
}
