// Package goal contains use cases for shared savings goals.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Title        string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic. The creator is the owner;
// ownership is implicit and not duplicated as a member row.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal title is required",
			domainerror.ErrGoalNotFound,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be positive",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	goal := entity.NewGoal(input.UserID, title, input.TargetAmount, input.Deadline)
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
