// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of token refresh.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase handles token refresh logic.
type RefreshTokenUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(
	userRepo adapter.UserRepository,
	tokenService adapter.TokenService,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute rotates the refresh token and issues a new pair.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid refresh token",
			domainerror.ErrInvalidToken,
		)
	}

	valid, err := uc.tokenService.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"refresh token has been invalidated",
			domainerror.ErrInvalidToken,
		)
	}

	// The user may have been deleted since the token was issued.
	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user no longer exists",
			domainerror.ErrUserNotFound,
		)
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RefreshTokenOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}
