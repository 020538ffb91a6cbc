// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-app/backend/internal/domain/entity"
)

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

// ToNotificationResponse converts a domain Notification entity to a NotificationResponse DTO.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		Kind:      string(n.Kind),
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationListResponse converts notifications to a NotificationListResponse.
func ToNotificationListResponse(notifications []*entity.Notification, unread int64) NotificationListResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = ToNotificationResponse(n)
	}
	return NotificationListResponse{
		Notifications: responses,
		UnreadCount:   unread,
	}
}
