// Package goal contains use cases for shared savings goals.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// GetGoalInput represents the input for fetching one goal with members.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the detailed goal view.
type GetGoalOutput struct {
	Detail *entity.GoalDetail
}

// GetGoalUseCase fetches a goal with its member breakdown and per-member
// contributions. Only the owner and members may see it.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
	userRepo adapter.UserRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(
	goalRepo adapter.GoalRepository,
	userRepo adapter.UserRepository,
) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute performs the goal lookup.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	member, err := uc.goalRepo.IsMember(ctx, goal.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check goal membership: %w", err)
	}
	if !member {
		// Invisible goals behave exactly like missing ones.
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	contributions, err := uc.goalRepo.ContributionsByUser(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}

	owner, err := uc.userRepo.FindByID(ctx, goal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal owner: %w", err)
	}

	details := []entity.GoalMemberDetail{{
		UserID:       owner.ID,
		UserName:     owner.Name,
		Email:        owner.Email,
		Role:         entity.GoalRoleOwner,
		Contribution: contributions[owner.ID],
	}}

	members, err := uc.goalRepo.FindMembers(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal members: %w", err)
	}
	for _, m := range members {
		user, err := uc.userRepo.FindByID(ctx, m.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load member user: %w", err)
		}
		details = append(details, entity.GoalMemberDetail{
			UserID:       user.ID,
			UserName:     user.Name,
			Email:        user.Email,
			Role:         m.Role,
			Contribution: contributions[user.ID],
		})
	}

	return &GetGoalOutput{
		Detail: &entity.GoalDetail{
			Goal:    goal,
			IsOwner: goal.UserID == input.UserID,
			Members: details,
		},
	}, nil
}
