// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email         string
	Password      string
	TwoFactorCode string
	RememberMe    bool
}

// LoginUserOutput represents the output of user login. When the account has
// two-factor authentication enabled and no code was supplied,
// TwoFactorRequired is set and the token fields are empty.
type LoginUserOutput struct {
	AccessToken       string
	RefreshToken      string
	User              *entity.User
	TwoFactorRequired bool
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	totpService     adapter.TOTPService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	totpService adapter.TOTPService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		totpService:     totpService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	// Return a generic error on both unknown email and bad password to
	// prevent email enumeration.
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if user.TwoFactorEnabled {
		if input.TwoFactorCode == "" {
			return &LoginUserOutput{
				User:              user,
				TwoFactorRequired: true,
			}, nil
		}
		if !uc.totpService.ValidateCode(user.TwoFactorSecret, input.TwoFactorCode) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidTwoFactor,
				"invalid two-factor code",
				domainerror.ErrInvalidTwoFactorCode,
			)
		}
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}
