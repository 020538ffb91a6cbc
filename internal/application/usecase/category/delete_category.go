// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic. A category still
// referenced by entries cannot be removed.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	entryRepo    adapter.EntryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	entryRepo adapter.EntryRepository,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		entryRepo:    entryRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if category.IsSystemDefault() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeSystemCategoryLocked,
			"system default categories cannot be deleted",
			domainerror.ErrSystemCategoryLocked,
		)
	}

	if !category.BelongsTo(input.UserID) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	inUse, err := uc.entryRepo.ExistsByCategory(ctx, input.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if inUse {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			"category is referenced by existing entries",
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
