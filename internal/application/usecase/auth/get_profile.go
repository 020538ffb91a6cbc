// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// GetProfileInput represents the input for fetching the current user.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the output of fetching the current user.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase loads the authenticated user's account data.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the profile lookup.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	return &GetProfileOutput{
		User: user,
	}, nil
}
