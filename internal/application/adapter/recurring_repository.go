// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// RecurringRepository defines the interface for recurring-template
// persistence operations.
type RecurringRepository interface {
	// Create creates a new template in the database.
	Create(ctx context.Context, template *entity.RecurringTemplate) error

	// FindByOwner retrieves a template by id for the given owner.
	FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringTemplate, error)

	// FindByUser retrieves all templates for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTemplate, error)

	// FindAllActive retrieves every active template system-wide, for the
	// scheduler run.
	FindAllActive(ctx context.Context) ([]*entity.RecurringTemplate, error)

	// Update updates a template guarded by its optimistic version token.
	// Returns domain ErrRecurringConflict when the stored version differs.
	Update(ctx context.Context, template *entity.RecurringTemplate) error

	// AdvanceLastProcessed persists the scheduler's marker move without
	// touching user-editable fields.
	AdvanceLastProcessed(ctx context.Context, template *entity.RecurringTemplate) error
}

// InvoiceRepository defines the interface for invoice persistence operations.
type InvoiceRepository interface {
	// Create creates a new invoice in the database.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// FindByOwner retrieves an invoice by id for the given owner.
	FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Invoice, error)

	// FindByUser retrieves all invoices for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error)

	// FindAllActive retrieves every active invoice system-wide, for the
	// reminder run.
	FindAllActive(ctx context.Context) ([]*entity.Invoice, error)

	// Update updates an existing invoice in the database.
	Update(ctx context.Context, invoice *entity.Invoice) error

	// Delete removes an invoice for the given owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
