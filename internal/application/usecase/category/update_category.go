// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Nil pointers
// leave the corresponding field untouched.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Icon       *string
	Color      *string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic. System default
// categories are immutable.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if category.IsSystemDefault() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSystemCategoryLocked,
			"system default categories cannot be modified",
			domainerror.ErrSystemCategoryLocked,
		)
	}

	// A category owned by another user behaves exactly like a missing one.
	if !category.BelongsTo(input.UserID) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" || len(name) > MaxCategoryNameLength {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeMissingCategoryName,
				fmt.Sprintf("category name is required and must not exceed %d characters", MaxCategoryNameLength),
				domainerror.ErrCategoryNameTaken,
			)
		}
		if name != category.Name {
			exists, err := uc.categoryRepo.ExistsByNameForUser(ctx, input.UserID, name)
			if err != nil {
				return nil, fmt.Errorf("failed to check category name existence: %w", err)
			}
			if exists {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCategoryNameTaken,
					"a category with this name already exists",
					domainerror.ErrCategoryNameTaken,
				)
			}
		}
		category.Name = name
	}

	if input.Icon != nil {
		category.Icon = *input.Icon
	}

	if input.Color != nil {
		if !hexColorRegex.MatchString(*input.Color) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryKind,
				"color must be a valid hex format (#XXXXXX)",
				domainerror.ErrInvalidCategoryKind,
			)
		}
		category.Color = *input.Color
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
