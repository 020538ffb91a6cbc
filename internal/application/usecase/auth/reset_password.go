// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for completing a password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordOutput represents the output of a password reset.
type ResetPasswordOutput struct {
	Message string
}

// ResetPasswordUseCase exchanges a recovery token for a new password. The
// token is single-use: it is cleared as soon as the reset succeeds.
type ResetPasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the password reset.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error) {
	if input.Token == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidResetToken,
			"invalid or expired password reset token",
			domainerror.ErrInvalidResetToken,
		)
	}

	user, err := uc.userRepo.FindByRecoveryToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidResetToken,
			"invalid or expired password reset token",
			domainerror.ErrInvalidResetToken,
		)
	}

	if user.RecoveryTokenExpiry == nil || time.Now().UTC().After(*user.RecoveryTokenExpiry) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeExpiredResetToken,
			"password reset token has expired",
			domainerror.ErrInvalidResetToken,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.RecoveryToken = nil
	user.RecoveryTokenExpiry = nil
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	return &ResetPasswordOutput{
		Message: "Senha redefinida com sucesso",
	}, nil
}
