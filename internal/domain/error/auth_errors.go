// Package error defines domain-specific errors for the finance application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrTwoFactorRequired is returned when login needs a TOTP code.
	ErrTwoFactorRequired = errors.New("two-factor code required")

	// ErrInvalidTwoFactorCode is returned when a TOTP code does not verify.
	ErrInvalidTwoFactorCode = errors.New("invalid two-factor code")

	// ErrTwoFactorAlreadyEnabled is returned when 2FA setup is requested twice.
	ErrTwoFactorAlreadyEnabled = errors.New("two-factor authentication already enabled")

	// ErrTwoFactorNotInitiated is returned when confirming 2FA without a pending setup.
	ErrTwoFactorNotInitiated = errors.New("two-factor setup not initiated")

	// ErrInvalidResetToken is returned when a password reset token is unknown or expired.
	ErrInvalidResetToken = errors.New("invalid password reset token")

	// ErrInvalidConfirmation is returned when account deletion lacks the confirmation phrase.
	ErrInvalidConfirmation = errors.New("invalid confirmation")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeEmailExists   AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword  AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail  AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields AuthErrorCode = "AUTH-010004"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"
	ErrCodeTwoFactorRequired  AuthErrorCode = "AUTH-020004"
	ErrCodeInvalidTwoFactor   AuthErrorCode = "AUTH-020005"

	// Token errors (03XXXX)
	ErrCodeInvalidToken      AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken      AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken      AuthErrorCode = "AUTH-030003"
	ErrCodeInvalidResetToken AuthErrorCode = "AUTH-030004"
	ErrCodeExpiredResetToken AuthErrorCode = "AUTH-030005"

	// 2FA setup errors (04XXXX)
	ErrCodeTwoFactorEnabled      AuthErrorCode = "AUTH-040001"
	ErrCodeTwoFactorNotInitiated AuthErrorCode = "AUTH-040002"

	// Account errors (05XXXX)
	ErrCodeInvalidConfirmation AuthErrorCode = "AUTH-050001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
