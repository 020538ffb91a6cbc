// Package goal contains use cases for shared savings goals.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic, owner-only.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if goal.UserID != input.UserID {
		member, err := uc.goalRepo.IsMember(ctx, input.GoalID, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to check goal membership: %w", err)
		}
		if !member {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return domainerror.NewGoalError(
			domainerror.ErrCodeNotGoalOwner,
			"only the goal owner may delete a goal",
			domainerror.ErrNotGoalOwner,
		)
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	return nil
}
