// Package error defines domain-specific errors for the finance application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found or not visible to the caller.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrNotGoalOwner is returned when a member attempts an owner-only operation.
	ErrNotGoalOwner = errors.New("only the goal owner may perform this operation")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrMemberAlreadyExists is returned when inviting a user who is already a member.
	ErrMemberAlreadyExists = errors.New("user is already a member of this goal")

	// ErrCannotInviteSelf is returned when the owner invites themselves.
	ErrCannotInviteSelf = errors.New("cannot invite yourself")

	// ErrInviteeNotFound is returned when the invited email has no account.
	ErrInviteeNotFound = errors.New("invited user not found")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeNotGoalOwner        GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010004"

	// Membership errors (02XXXX)
	ErrCodeMemberAlreadyExists GoalErrorCode = "GOL-020001"
	ErrCodeCannotInviteSelf    GoalErrorCode = "GOL-020002"
	ErrCodeInviteeNotFound     GoalErrorCode = "GOL-020003"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
