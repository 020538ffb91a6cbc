// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	return result.Error
}

// FindByOwner retrieves an entry by id for the given owner.
func (r *entryRepository) FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Entry, error) {
	var entryModel model.EntryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// applyFilter translates an adapter filter to query conditions.
func applyFilter(query *gorm.DB, filter adapter.EntryFilter) *gorm.DB {
	query = query.Where("user_id = ?", filter.UserID)
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}
	return query
}

// FindByFilter retrieves entries matching the filter, newest first, with
// categories preloaded.
func (r *entryRepository) FindByFilter(ctx context.Context, filter adapter.EntryFilter) ([]*entity.EntryWithCategory, error) {
	var entryModels []model.EntryModel
	query := applyFilter(r.db.WithContext(ctx).Model(&model.EntryModel{}), filter)
	result := query.
		Preload("Category").
		Order("date DESC, created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.EntryWithCategory, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntityWithCategory()
	}
	return entries, nil
}

// GetTotals aggregates income and expense totals for the filter.
func (r *entryRepository) GetTotals(ctx context.Context, filter adapter.EntryFilter) (*entity.EntryTotals, error) {
	sumByKind := func(kind entity.EntryKind) (decimal.Decimal, error) {
		var row struct {
			Total decimal.Decimal
		}
		query := applyFilter(r.db.WithContext(ctx).Model(&model.EntryModel{}), filter)
		result := query.
			Where("kind = ?", string(kind)).
			Select("COALESCE(SUM(amount), 0) as total").
			Scan(&row)
		if result.Error != nil {
			return decimal.Zero, result.Error
		}
		return row.Total, nil
	}

	income, err := sumByKind(entity.EntryKindIncome)
	if err != nil {
		return nil, err
	}
	expense, err := sumByKind(entity.EntryKindExpense)
	if err != nil {
		return nil, err
	}

	return &entity.EntryTotals{
		IncomeTotal:  income,
		ExpenseTotal: expense,
		NetTotal:     income.Sub(expense),
	}, nil
}

// Update updates an entry guarded by its optimistic version token. The row
// must still carry the version the caller loaded; otherwise another writer
// won the race and the update is rejected.
func (r *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)
	loadedVersion := entryModel.Version
	entryModel.Version = loadedVersion + 1
	entryModel.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("id = ? AND user_id = ? AND version = ?", entryModel.ID, entryModel.UserID, loadedVersion).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(entryModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryConflict,
			"entry was modified concurrently",
			domainerror.ErrEntryConflict,
		)
	}

	entry.Version = loadedVersion + 1
	return nil
}

// Delete removes an entry for the given owner.
func (r *entryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.EntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"entry not found",
			domainerror.ErrEntryNotFound,
		)
	}
	return nil
}

// SumDebitByWallet returns the net amount (income - expense) of debit
// entries referencing the wallet.
func (r *entryRepository) SumDebitByWallet(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("wallet_id = ? AND payment_method = ?", walletID, string(entity.PaymentMethodDebit)).
		Select("COALESCE(SUM(CASE WHEN kind = 'income' THEN amount ELSE -amount END), 0) as total").
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return row.Total, nil
}

// FindOpenByCard returns credit entries on the card that still have unpaid
// installments.
func (r *entryRepository) FindOpenByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Entry, error) {
	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Where("credit_card_id = ? AND payment_method = ?", cardID, string(entity.PaymentMethodCredit)).
		Where("installments_paid < installment_count").
		Order("date DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.Entry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// FindExpensesAround returns the user's expense entries dated inside
// [start, end], category preloaded.
func (r *entryRepository) FindExpensesAround(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.EntryWithCategory, error) {
	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND kind = ?", userID, string(entity.EntryKindExpense)).
		Where("date >= ? AND date <= ?", start, end).
		Order("date DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.EntryWithCategory, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntityWithCategory()
	}
	return entries, nil
}

// ExistsByCategory reports whether any entry references the category.
func (r *entryRepository) ExistsByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
