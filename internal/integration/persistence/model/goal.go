// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"type:varchar(100);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Deadline      *time.Time      `gorm:"type:date"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Title:         goal.Title,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Deadline:      goal.Deadline,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// GoalMemberModel represents the goal_members table in the database.
type GoalMemberModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoalID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_goal_members_goal_user"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_goal_members_goal_user"`
	Role     string    `gorm:"type:varchar(10);not null"`
	JoinedAt time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the GoalMemberModel.
func (GoalMemberModel) TableName() string {
	return "goal_members"
}

// ToEntity converts a GoalMemberModel to a domain GoalMember entity.
func (m *GoalMemberModel) ToEntity() *entity.GoalMember {
	return &entity.GoalMember{
		ID:       m.ID,
		GoalID:   m.GoalID,
		UserID:   m.UserID,
		Role:     entity.GoalRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

// GoalMemberFromEntity creates a GoalMemberModel from a domain GoalMember entity.
func GoalMemberFromEntity(member *entity.GoalMember) *GoalMemberModel {
	return &GoalMemberModel{
		ID:       member.ID,
		GoalID:   member.GoalID,
		UserID:   member.UserID,
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt,
	}
}
