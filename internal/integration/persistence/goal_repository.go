// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	return result.Error
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindVisibleToUser retrieves goals the user owns plus goals the user was
// invited to.
func (r *goalRepository) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? OR id IN (SELECT goal_id FROM goal_members WHERE user_id = ?)", userID, userID).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	return result.Error
}

// Delete removes a goal and its memberships.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", id).Delete(&model.GoalMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GoalModel{}, "id = ?", id).Error
	})
}

// AddAmount atomically adjusts the goal's saved amount.
func (r *goalRepository) AddAmount(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", id).
		Update("current_amount", gorm.Expr("current_amount + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	return nil
}

// AddMember records a membership on the goal.
func (r *goalRepository) AddMember(ctx context.Context, member *entity.GoalMember) error {
	memberModel := model.GoalMemberFromEntity(member)
	result := r.db.WithContext(ctx).Create(memberModel)
	return result.Error
}

// IsMember reports whether the user owns or was invited to the goal.
func (r *goalRepository) IsMember(ctx context.Context, goalID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	if count > 0 {
		return true, nil
	}

	result = r.db.WithContext(ctx).
		Model(&model.GoalMemberModel{}).
		Where("goal_id = ? AND user_id = ?", goalID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// FindMembers retrieves the goal's memberships with user data preloaded.
func (r *goalRepository) FindMembers(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalMember, error) {
	var memberModels []model.GoalMemberModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("joined_at ASC").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	members := make([]*entity.GoalMember, len(memberModels))
	for i, mm := range memberModels {
		members[i] = mm.ToEntity()
	}
	return members, nil
}

// ContributionsByUser sums income entries referencing the goal, grouped by
// contributing user.
func (r *goalRepository) ContributionsByUser(ctx context.Context, goalID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []struct {
		UserID uuid.UUID       `gorm:"column:user_id"`
		Total  decimal.Decimal `gorm:"column:total"`
	}
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Select("user_id, COALESCE(SUM(amount), 0) as total").
		Where("goal_id = ? AND kind = ?", goalID, string(entity.EntryKindIncome)).
		Group("user_id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	contributions := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		contributions[row.UserID] = row.Total
	}
	return contributions, nil
}
