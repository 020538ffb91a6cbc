// Package error defines domain-specific errors for the finance application.
package error

import "errors"

// Category domain errors.
var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryNameTaken     = errors.New("category name already in use")
	ErrSystemCategoryLocked  = errors.New("system default categories cannot be modified")
	ErrInvalidCategoryKind   = errors.New("invalid category kind")
	ErrCategoryNotOwned      = errors.New("category does not belong to user")
	ErrCategoryInUse         = errors.New("category is referenced by existing entries")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound     CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTaken    CategoryErrorCode = "CAT-010002"
	ErrCodeSystemCategoryLocked CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidCategoryKind  CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNotOwned     CategoryErrorCode = "CAT-010005"
	ErrCodeCategoryInUse        CategoryErrorCode = "CAT-010006"
	ErrCodeMissingCategoryName  CategoryErrorCode = "CAT-010007"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
