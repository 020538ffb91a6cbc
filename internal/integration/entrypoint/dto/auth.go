// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-app/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	TwoFactorCode string `json:"two_factor_code,omitempty"`
	RememberMe    bool   `json:"remember_me"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ForgotPasswordRequest represents the request body for a password reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents the request body for completing a reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ConfirmTwoFactorRequest represents the request body for 2FA confirmation.
type ConfirmTwoFactorRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TwoFactorChallengeResponse signals that login needs a 2FA code.
type TwoFactorChallengeResponse struct {
	TwoFactorRequired bool `json:"two_factor_required"`
}

// TwoFactorSetupResponse carries the enrollment secret for authenticator apps.
type TwoFactorSetupResponse struct {
	Secret          string `json:"secret"`
	ProvisioningURL string `json:"provisioning_url"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	TwoFactorEnabled   bool      `json:"two_factor_enabled"`
	EmailNotifications bool      `json:"email_notifications"`
	CreatedAt          time.Time `json:"created_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                 user.ID.String(),
		Email:              user.Email,
		Name:               user.Name,
		TwoFactorEnabled:   user.TwoFactorEnabled,
		EmailNotifications: user.EmailNotifications,
		CreatedAt:          user.CreatedAt,
	}
}
