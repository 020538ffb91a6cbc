// Package error defines domain-specific errors for the finance application.
package error

import "errors"

// Recurring-template, invoice and scheduler domain errors.
var (
	ErrRecurringNotFound = errors.New("recurring template not found")
	ErrInvoiceNotFound   = errors.New("invoice not found")

	// ErrInvalidFrequency is returned when creating a template with an unknown frequency.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidDueDay is returned when an invoice due day is outside 1-31.
	ErrInvalidDueDay = errors.New("invalid due day (1-31)")

	// ErrRecurringConflict is returned when a template update lost an optimistic race.
	ErrRecurringConflict = errors.New("recurring template was modified concurrently")

	// ErrSchedulerSecretMismatch is returned when the X-Scheduler-Secret header is wrong.
	ErrSchedulerSecretMismatch = errors.New("invalid scheduler secret")
)

// SchedulerErrorCode defines error codes for recurring/invoice/scheduler errors.
// Format: SCH-XXYYYY where XX is category and YYYY is specific error.
type SchedulerErrorCode string

const (
	ErrCodeRecurringNotFound SchedulerErrorCode = "SCH-010001"
	ErrCodeInvalidFrequency  SchedulerErrorCode = "SCH-010002"
	ErrCodeRecurringConflict SchedulerErrorCode = "SCH-010003"

	ErrCodeInvoiceNotFound SchedulerErrorCode = "SCH-020001"
	ErrCodeInvalidDueDay   SchedulerErrorCode = "SCH-020002"

	ErrCodeSchedulerSecretMismatch SchedulerErrorCode = "SCH-030001"
	ErrCodeSchedulerBatchFailed    SchedulerErrorCode = "SCH-030002"
)

// SchedulerError represents a recurring/invoice/scheduler error with code and message.
type SchedulerError struct {
	Code    SchedulerErrorCode
	Message string
	Err     error
}

func (e *SchedulerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *SchedulerError) Unwrap() error {
	return e.Err
}

// NewSchedulerError creates a new SchedulerError with the given code and message.
func NewSchedulerError(code SchedulerErrorCode, message string, err error) *SchedulerError {
	return &SchedulerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
