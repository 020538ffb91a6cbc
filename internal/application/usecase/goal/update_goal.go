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

// UpdateGoalInput represents the input for goal update. Nil pointers leave
// the corresponding field untouched.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	UserID        uuid.UUID
	Title         *string
	TargetAmount  *decimal.Decimal
	Deadline      *time.Time
	ClearDeadline bool
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic. Only the owner may change a
// goal; members have read access.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.findOwnedGoal(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"goal title is required",
				domainerror.ErrGoalNotFound,
			)
		}
		goal.Title = title
	}
	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be positive",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}
	if input.ClearDeadline {
		goal.Deadline = nil
	} else if input.Deadline != nil {
		goal.Deadline = input.Deadline
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}

func (uc *UpdateGoalUseCase) findOwnedGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := uc.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if goal.UserID != userID {
		member, err := uc.goalRepo.IsMember(ctx, goalID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check goal membership: %w", err)
		}
		if !member {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNotGoalOwner,
			"only the goal owner may perform this operation",
			domainerror.ErrNotGoalOwner,
		)
	}

	return goal, nil
}
