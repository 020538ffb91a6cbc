// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Plan is read-only reference data describing a subscription tier. Plans are
// seeded at migration and never mutated through the API.
type Plan struct {
	ID           uuid.UUID
	Name         string
	MonthlyPrice decimal.Decimal
	Features     []Feature
	CreatedAt    time.Time
}

// Feature is a single capability attached to a plan.
type Feature struct {
	ID     uuid.UUID
	PlanID uuid.UUID
	Code   string
	Label  string
}
