// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

// PlanModel represents the plans table in the database.
type PlanModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	MonthlyPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time       `gorm:"not null"`

	Features []FeatureModel `gorm:"foreignKey:PlanID;references:ID"`
}

// TableName returns the table name for the PlanModel.
func (PlanModel) TableName() string {
	return "plans"
}

// ToEntity converts a PlanModel to a domain Plan entity.
func (m *PlanModel) ToEntity() *entity.Plan {
	features := make([]entity.Feature, len(m.Features))
	for i, f := range m.Features {
		features[i] = *f.ToEntity()
	}
	return &entity.Plan{
		ID:           m.ID,
		Name:         m.Name,
		MonthlyPrice: m.MonthlyPrice,
		Features:     features,
		CreatedAt:    m.CreatedAt,
	}
}

// PlanFromEntity creates a PlanModel from a domain Plan entity.
func PlanFromEntity(plan *entity.Plan) *PlanModel {
	features := make([]FeatureModel, len(plan.Features))
	for i, f := range plan.Features {
		features[i] = *FeatureFromEntity(&f)
	}
	return &PlanModel{
		ID:           plan.ID,
		Name:         plan.Name,
		MonthlyPrice: plan.MonthlyPrice,
		CreatedAt:    plan.CreatedAt,
		Features:     features,
	}
}

// FeatureModel represents the plan_features table in the database.
type FeatureModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanID uuid.UUID `gorm:"type:uuid;not null;index"`
	Code   string    `gorm:"type:varchar(50);not null"`
	Label  string    `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for the FeatureModel.
func (FeatureModel) TableName() string {
	return "plan_features"
}

// ToEntity converts a FeatureModel to a domain Feature entity.
func (m *FeatureModel) ToEntity() *entity.Feature {
	return &entity.Feature{
		ID:     m.ID,
		PlanID: m.PlanID,
		Code:   m.Code,
		Label:  m.Label,
	}
}

// FeatureFromEntity creates a FeatureModel from a domain Feature entity.
func FeatureFromEntity(feature *entity.Feature) *FeatureModel {
	return &FeatureModel{
		ID:     feature.ID,
		PlanID: feature.PlanID,
		Code:   feature.Code,
		Label:  feature.Label,
	}
}
