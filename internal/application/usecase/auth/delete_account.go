// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID       uuid.UUID
	Password     string
	Confirmation string
}

// DeleteAccountUseCase removes a user account after re-authenticating.
// Every refresh token of the user is invalidated before the row goes.
type DeleteAccountUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if input.Confirmation != "" && input.Confirmation != "DELETE" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidConfirmation,
			"confirmation must be 'DELETE'",
			domainerror.ErrInvalidConfirmation,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to invalidate user tokens: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
