// Package error defines domain-specific errors for the finance application.
package error

import "errors"

// Email domain errors.
var (
	// ErrEmailSendFailed is returned when an email fails to be sent.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrTemplateRenderFailed is returned when email template rendering fails.
	ErrTemplateRenderFailed = errors.New("failed to render email template")

	// ErrPermanentEmailFailure is returned when an email fails with a permanent error.
	ErrPermanentEmailFailure = errors.New("permanent email failure")

	// ErrTemporaryEmailFailure is returned when an email fails with a temporary error.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")

	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Send errors (01XXXX)
	ErrCodeEmailSendFailed       EmailErrorCode = "EMAIL-010001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-010002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-010003"

	// Template errors (02XXXX)
	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-020001"

	// Notification errors (03XXXX)
	ErrCodeNotificationNotFound EmailErrorCode = "EMAIL-030001"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
