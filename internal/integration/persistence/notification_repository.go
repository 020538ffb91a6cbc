// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create creates a new notification in the database.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Create(notificationModel)
	return result.Error
}

// FindByUser retrieves the user's notifications, newest first.
func (r *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}

// CountUnread returns the number of unread notifications for a user.
func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// MarkRead marks a notification as read for the given owner.
func (r *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewEmailError(
			domainerror.ErrCodeNotificationNotFound,
			"notification not found",
			domainerror.ErrNotificationNotFound,
		)
	}
	return nil
}

// MarkAllRead marks every notification of the user as read.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return result.Error
}

// integrationLogRepository implements the adapter.IntegrationLogRepository interface.
type integrationLogRepository struct {
	db *gorm.DB
}

// NewIntegrationLogRepository creates a new integration log repository instance.
func NewIntegrationLogRepository(db *gorm.DB) adapter.IntegrationLogRepository {
	return &integrationLogRepository{
		db: db,
	}
}

// Create appends an audit record for a scheduler run.
func (r *integrationLogRepository) Create(ctx context.Context, log *entity.IntegrationLog) error {
	logModel := model.IntegrationLogFromEntity(log)
	result := r.db.WithContext(ctx).Create(logModel)
	return result.Error
}

// FindRecent retrieves the latest audit records for an integration name.
func (r *integrationLogRepository) FindRecent(ctx context.Context, name string, limit int) ([]*entity.IntegrationLog, error) {
	var logModels []model.IntegrationLogModel
	result := r.db.WithContext(ctx).
		Where("integration = ?", name).
		Order("logged_at DESC").
		Limit(limit).
		Find(&logModels)
	if result.Error != nil {
		return nil, result.Error
	}

	logs := make([]*entity.IntegrationLog, len(logModels))
	for i, lm := range logModels {
		logs[i] = lm.ToEntity()
	}
	return logs, nil
}

// planRepository implements the adapter.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance.
func NewPlanRepository(db *gorm.DB) adapter.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// FindAll retrieves every plan with its features preloaded.
func (r *planRepository) FindAll(ctx context.Context) ([]*entity.Plan, error) {
	var planModels []model.PlanModel
	result := r.db.WithContext(ctx).
		Preload("Features").
		Order("monthly_price ASC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.Plan, len(planModels))
	for i, pm := range planModels {
		plans[i] = pm.ToEntity()
	}
	return plans, nil
}

// CountAll returns the number of seeded plans.
func (r *planRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.PlanModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Create creates a plan with its features, used by the seeder.
func (r *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	planModel := model.PlanFromEntity(plan)
	result := r.db.WithContext(ctx).Create(planModel)
	return result.Error
}
