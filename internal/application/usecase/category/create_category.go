// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// hexColorRegex is compiled once at package level for performance.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Icon   string // Optional, defaults to DefaultCategoryIcon
	Color  string // Optional, defaults to DefaultCategoryColor
	Kind   entity.EntryKind
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryName,
			fmt.Sprintf("category name is required and must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTaken,
		)
	}

	if input.Kind != entity.EntryKindIncome && input.Kind != entity.EntryKindExpense {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryKind,
			"category kind must be 'income' or 'expense'",
			domainerror.ErrInvalidCategoryKind,
		)
	}

	if input.Color != "" && !hexColorRegex.MatchString(input.Color) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryKind,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidCategoryKind,
		)
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

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

	category := entity.NewCategory(input.UserID, name, icon, color, input.Kind)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
