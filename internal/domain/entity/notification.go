// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind classifies an in-app notification.
type NotificationKind string

const (
	NotificationKindSystem NotificationKind = "system"
	NotificationKindEmail  NotificationKind = "email"
	NotificationKindAlert  NotificationKind = "alert"
)

// Notification is an in-app message shown to a user, e.g. a consolidated
// invoice due-date reminder.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Read      bool
	Kind      NotificationKind
	CreatedAt time.Time
}

// NewNotification creates a new unread Notification.
func NewNotification(userID uuid.UUID, title, message string, kind NotificationKind) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
}
