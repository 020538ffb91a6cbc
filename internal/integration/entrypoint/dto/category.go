// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
	Kind  string `json:"kind" binding:"required,oneof=income expense"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Icon            string    `json:"icon"`
	Color           string    `json:"color"`
	Kind            string    `json:"kind"`
	IsSystemDefault bool      `json:"is_system_default"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:              cat.ID.String(),
		Name:            cat.Name,
		Icon:            cat.Icon,
		Color:           cat.Color,
		Kind:            string(cat.Kind),
		IsSystemDefault: cat.IsSystemDefault(),
		CreatedAt:       cat.CreatedAt,
		UpdatedAt:       cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{Categories: responses}
}
