// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/finance-app/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	Read      bool      `gorm:"default:false;index"`
	Kind      string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Read:      m.Read,
		Kind:      entity.NotificationKind(m.Kind),
		CreatedAt: m.CreatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain entity.
func NotificationFromEntity(notification *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		Read:      notification.Read,
		Kind:      string(notification.Kind),
		CreatedAt: notification.CreatedAt,
	}
}

// IntegrationLogModel represents the integration_logs table in the database.
// Details uses a Postgres text array.
type IntegrationLogModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	LoggedAt    time.Time      `gorm:"not null;index"`
	Integration string         `gorm:"type:varchar(50);not null;index"`
	Status      string         `gorm:"type:varchar(10);not null"`
	Message     string         `gorm:"type:varchar(500)"`
	Details     pq.StringArray `gorm:"type:text[]"`
	RequesterIP string         `gorm:"type:varchar(45)"`
}

// TableName returns the table name for the IntegrationLogModel.
func (IntegrationLogModel) TableName() string {
	return "integration_logs"
}

// ToEntity converts an IntegrationLogModel to a domain IntegrationLog entity.
func (m *IntegrationLogModel) ToEntity() *entity.IntegrationLog {
	return &entity.IntegrationLog{
		ID:          m.ID,
		LoggedAt:    m.LoggedAt,
		Integration: m.Integration,
		Status:      m.Status,
		Message:     m.Message,
		Details:     m.Details,
		RequesterIP: m.RequesterIP,
	}
}

// IntegrationLogFromEntity creates an IntegrationLogModel from a domain entity.
func IntegrationLogFromEntity(log *entity.IntegrationLog) *IntegrationLogModel {
	return &IntegrationLogModel{
		ID:          log.ID,
		LoggedAt:    log.LoggedAt,
		Integration: log.Integration,
		Status:      log.Status,
		Message:     log.Message,
		Details:     log.Details,
		RequesterIP: log.RequesterIP,
	}
}
