// Package error defines domain-specific errors for the finance application.
package error

import "errors"

// Wallet, credit card and budget domain errors.
var (
	ErrWalletNotFound = errors.New("wallet not found")
	ErrCardNotFound   = errors.New("credit card not found")
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidCardDay is returned when a closing or due day is outside 1-31.
	ErrInvalidCardDay = errors.New("invalid day of month (1-31)")

	// ErrBudgetExists is returned when a budget already covers the category and month.
	ErrBudgetExists = errors.New("budget already exists for this category and month")

	// ErrInvalidBudgetPeriod is returned for an out-of-range month or year.
	ErrInvalidBudgetPeriod = errors.New("invalid budget month or year")
)

// PlanningErrorCode defines error codes for wallet/card/budget errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlanningErrorCode string

const (
	ErrCodeWalletNotFound      PlanningErrorCode = "PLN-010001"
	ErrCodeMissingWalletFields PlanningErrorCode = "PLN-010002"

	ErrCodeCardNotFound      PlanningErrorCode = "PLN-020001"
	ErrCodeInvalidCardDay    PlanningErrorCode = "PLN-020002"
	ErrCodeMissingCardFields PlanningErrorCode = "PLN-020003"

	ErrCodeBudgetNotFound      PlanningErrorCode = "PLN-030001"
	ErrCodeBudgetExists        PlanningErrorCode = "PLN-030002"
	ErrCodeInvalidBudgetPeriod PlanningErrorCode = "PLN-030003"
)

// PlanningError represents a wallet/card/budget error with code and message.
type PlanningError struct {
	Code    PlanningErrorCode
	Message string
	Err     error
}

func (e *PlanningError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *PlanningError) Unwrap() error {
	return e.Err
}

// NewPlanningError creates a new PlanningError with the given code and message.
func NewPlanningError(code PlanningErrorCode, message string, err error) *PlanningError {
	return &PlanningError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
