// Package goal contains use cases for shared savings goals.
package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// InviteMemberInput represents the input for inviting a user to a goal.
type InviteMemberInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID // Caller, must be the owner
	Email  string    // Invitee, must already have an account
}

// InviteMemberOutput represents the output of inviting a member.
type InviteMemberOutput struct {
	Member *entity.GoalMember
}

// InviteMemberUseCase grants another account shared access to a goal. The
// invitee is notified in-app.
type InviteMemberUseCase struct {
	goalRepo         adapter.GoalRepository
	userRepo         adapter.UserRepository
	notificationRepo adapter.NotificationRepository
}

// NewInviteMemberUseCase creates a new InviteMemberUseCase instance.
func NewInviteMemberUseCase(
	goalRepo adapter.GoalRepository,
	userRepo adapter.UserRepository,
	notificationRepo adapter.NotificationRepository,
) *InviteMemberUseCase {
	return &InviteMemberUseCase{
		goalRepo:         goalRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// Execute performs the invitation.
func (uc *InviteMemberUseCase) Execute(ctx context.Context, input InviteMemberInput) (*InviteMemberOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNotGoalOwner,
			"only the goal owner may invite members",
			domainerror.ErrNotGoalOwner,
		)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	invitee, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInviteeNotFound,
			"no account exists for this email",
			domainerror.ErrInviteeNotFound,
		)
	}

	if invitee.ID == goal.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeCannotInviteSelf,
			"cannot invite yourself",
			domainerror.ErrCannotInviteSelf,
		)
	}

	alreadyMember, err := uc.goalRepo.IsMember(ctx, goal.ID, invitee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check goal membership: %w", err)
	}
	if alreadyMember {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMemberAlreadyExists,
			"user is already a member of this goal",
			domainerror.ErrMemberAlreadyExists,
		)
	}

	member := entity.NewGoalMember(goal.ID, invitee.ID, entity.GoalRoleMember)
	if err := uc.goalRepo.AddMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add goal member: %w", err)
	}

	notification := entity.NewNotification(
		invitee.ID,
		"Convite para meta compartilhada",
		fmt.Sprintf("Você agora participa da meta %q", goal.Title),
		entity.NotificationKindSystem,
	)
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create invite notification: %w", err)
	}

	return &InviteMemberOutput{
		Member: member,
	}, nil
}
