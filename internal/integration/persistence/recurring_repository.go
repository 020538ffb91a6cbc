// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

// recurringRepository implements the adapter.RecurringRepository interface.
type recurringRepository struct {
	db *gorm.DB
}

// NewRecurringRepository creates a new recurring template repository instance.
func NewRecurringRepository(db *gorm.DB) adapter.RecurringRepository {
	return &recurringRepository{
		db: db,
	}
}

// Create creates a new template in the database.
func (r *recurringRepository) Create(ctx context.Context, template *entity.RecurringTemplate) error {
	templateModel := model.RecurringTemplateFromEntity(template)
	result := r.db.WithContext(ctx).Create(templateModel)
	return result.Error
}

// FindByOwner retrieves a template by id for the given owner.
func (r *recurringRepository) FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringTemplate, error) {
	var templateModel model.RecurringTemplateModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&templateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewSchedulerError(
				domainerror.ErrCodeRecurringNotFound,
				"recurring template not found",
				domainerror.ErrRecurringNotFound,
			)
		}
		return nil, result.Error
	}
	return templateModel.ToEntity(), nil
}

// FindByUser retrieves all templates for a given user.
func (r *recurringRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTemplate, error) {
	var templateModels []model.RecurringTemplateModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&templateModels)
	if result.Error != nil {
		return nil, result.Error
	}

	templates := make([]*entity.RecurringTemplate, len(templateModels))
	for i, tm := range templateModels {
		templates[i] = tm.ToEntity()
	}
	return templates, nil
}

// FindAllActive retrieves every active template system-wide.
func (r *recurringRepository) FindAllActive(ctx context.Context) ([]*entity.RecurringTemplate, error) {
	var templateModels []model.RecurringTemplateModel
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&templateModels)
	if result.Error != nil {
		return nil, result.Error
	}

	templates := make([]*entity.RecurringTemplate, len(templateModels))
	for i, tm := range templateModels {
		templates[i] = tm.ToEntity()
	}
	return templates, nil
}

// Update updates a template guarded by its optimistic version token.
func (r *recurringRepository) Update(ctx context.Context, template *entity.RecurringTemplate) error {
	templateModel := model.RecurringTemplateFromEntity(template)
	loadedVersion := templateModel.Version
	templateModel.Version = loadedVersion + 1
	templateModel.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&model.RecurringTemplateModel{}).
		Where("id = ? AND user_id = ? AND version = ?", templateModel.ID, templateModel.UserID, loadedVersion).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(templateModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewSchedulerError(
			domainerror.ErrCodeRecurringConflict,
			"recurring template was modified concurrently",
			domainerror.ErrRecurringConflict,
		)
	}

	template.Version = loadedVersion + 1
	return nil
}

// AdvanceLastProcessed persists the scheduler's marker move without touching
// user-editable fields. The marker write does not bump the version so user
// edits and scheduler runs interleave without spurious conflicts.
func (r *recurringRepository) AdvanceLastProcessed(ctx context.Context, template *entity.RecurringTemplate) error {
	result := r.db.WithContext(ctx).
		Model(&model.RecurringTemplateModel{}).
		Where("id = ?", template.ID).
		Updates(map[string]any{
			"last_processed_at": template.LastProcessedAt,
			"updated_at":        time.Now().UTC(),
		})
	return result.Error
}

// invoiceRepository implements the adapter.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance.
func NewInvoiceRepository(db *gorm.DB) adapter.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// Create creates a new invoice in the database.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := model.InvoiceFromEntity(invoice)
	result := r.db.WithContext(ctx).Create(invoiceModel)
	return result.Error
}

// FindByOwner retrieves an invoice by id for the given owner.
func (r *invoiceRepository) FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Invoice, error) {
	var invoiceModel model.InvoiceModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewSchedulerError(
				domainerror.ErrCodeInvoiceNotFound,
				"invoice not found",
				domainerror.ErrInvoiceNotFound,
			)
		}
		return nil, result.Error
	}
	return invoiceModel.ToEntity(), nil
}

// FindByUser retrieves all invoices for a given user.
func (r *invoiceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error) {
	var invoiceModels []model.InvoiceModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_day ASC").
		Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = im.ToEntity()
	}
	return invoices, nil
}

// FindAllActive retrieves every active invoice system-wide.
func (r *invoiceRepository) FindAllActive(ctx context.Context) ([]*entity.Invoice, error) {
	var invoiceModels []model.InvoiceModel
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("due_day ASC").
		Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = im.ToEntity()
	}
	return invoices, nil
}

// Update updates an existing invoice in the database.
func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := model.InvoiceFromEntity(invoice)
	result := r.db.WithContext(ctx).Save(invoiceModel)
	return result.Error
}

// Delete removes an invoice for the given owner.
func (r *invoiceRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.InvoiceModel{})
	return result.Error
}
