// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalRole represents a member's role on a shared goal.
type GoalRole string

const (
	GoalRoleOwner  GoalRole = "owner"
	GoalRoleMember GoalRole = "member"
)

// Goal represents a savings target. CurrentAmount is an application-level
// ledger: income entries referencing the goal add to it on creation and
// subtract from it on deletion. Expense entries never debit it.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID // Owner; implicit, not duplicated as a member row
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity with a zero current amount.
func NewGoal(userID uuid.UUID, title string, targetAmount decimal.Decimal, deadline *time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// GoalMember grants a user shared visibility on another user's goal.
type GoalMember struct {
	ID       uuid.UUID
	GoalID   uuid.UUID
	UserID   uuid.UUID
	Role     GoalRole
	JoinedAt time.Time
}

// NewGoalMember creates a new member record for a goal.
func NewGoalMember(goalID, userID uuid.UUID, role GoalRole) *GoalMember {
	return &GoalMember{
		ID:       uuid.New(),
		GoalID:   goalID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}
}

// GoalMemberDetail is a member joined with user identity and their total
// contribution of income entries linked to the goal.
type GoalMemberDetail struct {
	UserID       uuid.UUID
	UserName     string
	Email        string
	Role         GoalRole
	Contribution decimal.Decimal
}

// GoalDetail is a goal with its member breakdown.
type GoalDetail struct {
	Goal    *Goal
	IsOwner bool
	Members []GoalMemberDetail
}
