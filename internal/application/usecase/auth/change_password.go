// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// ChangePasswordInput represents the input for changing the account password.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase changes the password of a logged-in user after
// re-checking the current one.
type ChangePasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the password change.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.CurrentPassword); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"current password is incorrect",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
