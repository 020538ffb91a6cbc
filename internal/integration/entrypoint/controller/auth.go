// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-app/backend/internal/application/usecase/auth"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	registerUseCase         *auth.RegisterUserUseCase
	loginUseCase            *auth.LoginUserUseCase
	refreshTokenUseCase     *auth.RefreshTokenUseCase
	logoutUseCase           *auth.LogoutUserUseCase
	enableTwoFactorUseCase  *auth.EnableTwoFactorUseCase
	confirmTwoFactorUseCase *auth.ConfirmTwoFactorUseCase
	forgotPasswordUseCase   *auth.ForgotPasswordUseCase
	resetPasswordUseCase    *auth.ResetPasswordUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	refreshTokenUseCase *auth.RefreshTokenUseCase,
	logoutUseCase *auth.LogoutUserUseCase,
	enableTwoFactorUseCase *auth.EnableTwoFactorUseCase,
	confirmTwoFactorUseCase *auth.ConfirmTwoFactorUseCase,
	forgotPasswordUseCase *auth.ForgotPasswordUseCase,
	resetPasswordUseCase *auth.ResetPasswordUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase:         registerUseCase,
		loginUseCase:            loginUseCase,
		refreshTokenUseCase:     refreshTokenUseCase,
		logoutUseCase:           logoutUseCase,
		enableTwoFactorUseCase:  enableTwoFactorUseCase,
		confirmTwoFactorUseCase: confirmTwoFactorUseCase,
		forgotPasswordUseCase:   forgotPasswordUseCase,
		resetPasswordUseCase:    resetPasswordUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         dto.ToUserResponse(output.User),
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.LoginUserInput{
		Email:         req.Email,
		Password:      req.Password,
		TwoFactorCode: req.TwoFactorCode,
		RememberMe:    req.RememberMe,
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	if output.TwoFactorRequired {
		ctx.JSON(http.StatusOK, dto.TwoFactorChallengeResponse{
			TwoFactorRequired: true,
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         dto.ToUserResponse(output.User),
	})
}

// RefreshToken handles POST /auth/refresh requests.
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := auth.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	}

	output, err := c.refreshTokenUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := auth.LogoutUserInput{
		RefreshToken: req.RefreshToken,
	}

	if err := c.logoutUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Logged out successfully",
	})
}

// EnableTwoFactor handles POST /auth/2fa/enable requests.
func (c *AuthController) EnableTwoFactor(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := auth.EnableTwoFactorInput{
		UserID: userID,
	}

	output, err := c.enableTwoFactorUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TwoFactorSetupResponse{
		Secret:          output.Secret,
		ProvisioningURL: output.ProvisioningURL,
	})
}

// ConfirmTwoFactor handles POST /auth/2fa/confirm requests.
func (c *AuthController) ConfirmTwoFactor(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ConfirmTwoFactorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.ConfirmTwoFactorInput{
		UserID: userID,
		Code:   req.Code,
	}

	if err := c.confirmTwoFactorUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Two-factor authentication enabled",
	})
}

// ForgotPassword handles POST /auth/forgot-password requests.
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.ForgotPasswordInput{
		Email: req.Email,
	}

	output, err := c.forgotPasswordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// ResetPassword handles POST /auth/reset-password requests.
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}

	output, err := c.resetPasswordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// handleAuthError handles auth errors and returns appropriate HTTP responses.
func handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := getStatusCodeForAuthError(authErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidTwoFactor,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeInvalidResetToken,
		domainerror.ErrCodeExpiredResetToken,
		domainerror.ErrCodeInvalidConfirmation:
		return http.StatusBadRequest
	case domainerror.ErrCodeTwoFactorEnabled,
		domainerror.ErrCodeTwoFactorNotInitiated:
		return http.StatusConflict
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
