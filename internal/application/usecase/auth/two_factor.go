// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// EnableTwoFactorInput represents the input for starting 2FA setup.
type EnableTwoFactorInput struct {
	UserID uuid.UUID
}

// EnableTwoFactorOutput carries the shared secret and provisioning URL the
// user loads into an authenticator app.
type EnableTwoFactorOutput struct {
	Secret          string
	ProvisioningURL string
}

// EnableTwoFactorUseCase starts the 2FA enrollment. The secret is stored
// immediately but 2FA is only armed once ConfirmTwoFactorUseCase verifies a
// code generated from it.
type EnableTwoFactorUseCase struct {
	userRepo    adapter.UserRepository
	totpService adapter.TOTPService
}

// NewEnableTwoFactorUseCase creates a new EnableTwoFactorUseCase instance.
func NewEnableTwoFactorUseCase(
	userRepo adapter.UserRepository,
	totpService adapter.TOTPService,
) *EnableTwoFactorUseCase {
	return &EnableTwoFactorUseCase{
		userRepo:    userRepo,
		totpService: totpService,
	}
}

// Execute generates and stores a new TOTP secret for the user.
func (uc *EnableTwoFactorUseCase) Execute(ctx context.Context, input EnableTwoFactorInput) (*EnableTwoFactorOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if user.TwoFactorEnabled {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeTwoFactorEnabled,
			"two-factor authentication is already enabled",
			domainerror.ErrTwoFactorAlreadyEnabled,
		)
	}

	secret, provisioningURL, err := uc.totpService.GenerateSecret(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate totp secret: %w", err)
	}

	user.TwoFactorSecret = secret
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store totp secret: %w", err)
	}

	return &EnableTwoFactorOutput{
		Secret:          secret,
		ProvisioningURL: provisioningURL,
	}, nil
}

// ConfirmTwoFactorInput represents the input for confirming 2FA setup.
type ConfirmTwoFactorInput struct {
	UserID uuid.UUID
	Code   string
}

// ConfirmTwoFactorUseCase arms 2FA after the user proves they hold the secret.
type ConfirmTwoFactorUseCase struct {
	userRepo    adapter.UserRepository
	totpService adapter.TOTPService
}

// NewConfirmTwoFactorUseCase creates a new ConfirmTwoFactorUseCase instance.
func NewConfirmTwoFactorUseCase(
	userRepo adapter.UserRepository,
	totpService adapter.TOTPService,
) *ConfirmTwoFactorUseCase {
	return &ConfirmTwoFactorUseCase{
		userRepo:    userRepo,
		totpService: totpService,
	}
}

// Execute verifies the code against the pending secret and enables 2FA.
func (uc *ConfirmTwoFactorUseCase) Execute(ctx context.Context, input ConfirmTwoFactorInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if user.TwoFactorEnabled {
		return domainerror.NewAuthError(
			domainerror.ErrCodeTwoFactorEnabled,
			"two-factor authentication is already enabled",
			domainerror.ErrTwoFactorAlreadyEnabled,
		)
	}

	if user.TwoFactorSecret == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeTwoFactorNotInitiated,
			"two-factor setup has not been started",
			domainerror.ErrTwoFactorNotInitiated,
		)
	}

	if !uc.totpService.ValidateCode(user.TwoFactorSecret, input.Code) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidTwoFactor,
			"invalid two-factor code",
			domainerror.ErrInvalidTwoFactorCode,
		)
	}

	user.TwoFactorEnabled = true
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to enable two-factor: %w", err)
	}

	return nil
}
