// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=100"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	Deadline     *string `json:"deadline,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title         *string  `json:"title,omitempty" binding:"omitempty,min=1,max=100"`
	TargetAmount  *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	Deadline      *string  `json:"deadline,omitempty"`
	ClearDeadline bool     `json:"clear_deadline,omitempty"`
}

// InviteMemberRequest represents the request body for goal member invitation.
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	TargetAmount  string     `json:"target_amount"`
	CurrentAmount string     `json:"current_amount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// GoalMemberResponse represents one member of a shared goal.
type GoalMemberResponse struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Contribution string `json:"contribution"`
}

// GoalDetailResponse represents a goal with its membership breakdown.
type GoalDetailResponse struct {
	GoalResponse
	IsOwner bool                 `json:"is_owner"`
	Members []GoalMemberResponse `json:"members"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		Title:         g.Title,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Deadline:      g.Deadline,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToGoalListResponse converts goals to a GoalListResponse.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: responses}
}

// ToGoalDetailResponse converts a goal detail to a GoalDetailResponse.
func ToGoalDetailResponse(detail *entity.GoalDetail) GoalDetailResponse {
	members := make([]GoalMemberResponse, len(detail.Members))
	for i, m := range detail.Members {
		members[i] = GoalMemberResponse{
			UserID:       m.UserID.String(),
			Name:         m.UserName,
			Email:        m.Email,
			Role:         string(m.Role),
			Contribution: m.Contribution.String(),
		}
	}
	return GoalDetailResponse{
		GoalResponse: ToGoalResponse(detail.Goal),
		IsOwner:      detail.IsOwner,
		Members:      members,
	}
}
