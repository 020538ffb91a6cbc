// Package error defines domain-specific errors for the finance application.
package error

import "errors"

// Entry domain errors.
var (
	// ErrEntryNotFound is returned when an entry is not found or not owned by the caller.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidEntryKind is returned when the kind is neither income nor expense.
	ErrInvalidEntryKind = errors.New("invalid entry kind")

	// ErrInvalidAmount is returned when the amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidInstallments is returned when the installment fields are inconsistent.
	ErrInvalidInstallments = errors.New("invalid installment configuration")

	// ErrEntryConflict is returned when an update lost an optimistic concurrency race.
	ErrEntryConflict = errors.New("entry was modified concurrently")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryKind      EntryErrorCode = "ENT-010001"
	ErrCodeInvalidAmount         EntryErrorCode = "ENT-010002"
	ErrCodeInvalidInstallments   EntryErrorCode = "ENT-010003"
	ErrCodeEntryCategoryNotFound EntryErrorCode = "ENT-010004"
	ErrCodeEntryWalletNotFound   EntryErrorCode = "ENT-010005"
	ErrCodeEntryCardNotFound     EntryErrorCode = "ENT-010006"
	ErrCodeEntryGoalNotFound     EntryErrorCode = "ENT-010007"

	// Lookup errors (02XXXX)
	ErrCodeEntryNotFound EntryErrorCode = "ENT-020001"

	// Concurrency errors (03XXXX)
	ErrCodeEntryConflict EntryErrorCode = "ENT-030001"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
