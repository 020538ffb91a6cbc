// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Integration log statuses.
const (
	IntegrationStatusSuccess = "Success"
	IntegrationStatusError   = "Error"
)

// Integration names used by the scheduler endpoints.
const (
	IntegrationRecurringScheduler = "Scheduler/Recurring"
	IntegrationInvoiceScheduler   = "Scheduler/Invoices"
)

// IntegrationLog is an audit record for external callers hitting the
// scheduler endpoints. Both authentication failures and successful runs are
// recorded, with the requester IP.
type IntegrationLog struct {
	ID          uuid.UUID
	LoggedAt    time.Time
	Integration string
	Status      string
	Message     string
	Details     []string
	RequesterIP string
}

// NewIntegrationLog creates a log record for the given integration and caller.
func NewIntegrationLog(integration, requesterIP string) *IntegrationLog {
	return &IntegrationLog{
		ID:          uuid.New(),
		LoggedAt:    time.Now().UTC(),
		Integration: integration,
		RequesterIP: requesterIP,
	}
}
