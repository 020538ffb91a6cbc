// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

// EntryFilter defines filter options for listing entries.
type EntryFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Kind       *entity.EntryKind
}

// EntryRepository defines the interface for entry persistence operations.
// All lookups are owner-scoped: an id owned by another user behaves exactly
// like a missing row.
type EntryRepository interface {
	// Create creates a new entry in the database.
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByOwner retrieves an entry by id for the given owner.
	FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Entry, error)

	// FindByFilter retrieves entries matching the filter, newest first,
	// with categories preloaded.
	FindByFilter(ctx context.Context, filter EntryFilter) ([]*entity.EntryWithCategory, error)

	// GetTotals aggregates income and expense totals for the filter.
	GetTotals(ctx context.Context, filter EntryFilter) (*entity.EntryTotals, error)

	// Update updates an entry guarded by its optimistic version token.
	// Returns domain ErrEntryConflict when the stored version differs.
	Update(ctx context.Context, entry *entity.Entry) error

	// Delete removes an entry for the given owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// SumDebitByWallet returns the net amount (income - expense) of debit
	// entries referencing the wallet.
	SumDebitByWallet(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error)

	// FindOpenByCard returns credit entries on the card that still have
	// unpaid installments.
	FindOpenByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Entry, error)

	// FindExpensesAround returns the user's expense entries dated inside
	// [start, end], category preloaded. The window must be wide enough for
	// callers to project installments into the target month.
	FindExpensesAround(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.EntryWithCategory, error)

	// ExistsByCategory reports whether any entry references the category.
	ExistsByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error)
}
