// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	return result.Error
}

// FindByOwner retrieves a budget by id for the given owner.
func (r *budgetRepository) FindByOwner(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByPeriod retrieves the user's budgets for one month.
func (r *budgetRepository) FindByPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("created_at ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// ExistsForCategoryPeriod checks whether a budget already covers the category
// in the given month.
func (r *budgetRepository) ExistsForCategoryPeriod(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("user_id = ? AND category_id = ? AND month = ? AND year = ?", userID, categoryID, month, year).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Save(budgetModel)
	return result.Error
}

// Delete removes a budget for the given owner.
func (r *budgetRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.BudgetModel{})
	return result.Error
}
