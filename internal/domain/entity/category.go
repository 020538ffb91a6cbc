// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents an entry category. A nil UserID marks a system
// default category shared by all users; those are never mutated.
type Category struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Name      string
	Icon      string
	Color     string
	Kind      EntryKind
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new user-owned Category entity.
// Defaulting logic for color and icon is applied in the application layer
// before calling this constructor.
func NewCategory(userID uuid.UUID, name, icon, color string, kind EntryKind) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    &userID,
		Name:      name,
		Icon:      icon,
		Color:     color,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsSystemDefault reports whether the category is a shared system default.
func (c *Category) IsSystemDefault() bool {
	return c.UserID == nil
}

// BelongsTo reports whether the category is usable by the given user:
// either a system default or owned by that user.
func (c *Category) BelongsTo(userID uuid.UUID) bool {
	return c.UserID == nil || *c.UserID == userID
}
