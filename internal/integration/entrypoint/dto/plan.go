// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-app/backend/internal/domain/entity"

// FeatureResponse represents one feature of a subscription plan.
type FeatureResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// PlanResponse represents a single subscription plan in API responses.
type PlanResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	MonthlyPrice string            `json:"monthly_price"`
	Features     []FeatureResponse `json:"features"`
}

// PlanListResponse represents the response for listing plans.
type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
}

// ToPlanListResponse converts plans to a PlanListResponse.
func ToPlanListResponse(plans []*entity.Plan) PlanListResponse {
	responses := make([]PlanResponse, len(plans))
	for i, p := range plans {
		features := make([]FeatureResponse, len(p.Features))
		for j, f := range p.Features {
			features[j] = FeatureResponse{Code: f.Code, Label: f.Label}
		}
		responses[i] = PlanResponse{
			ID:           p.ID.String(),
			Name:         p.Name,
			MonthlyPrice: p.MonthlyPrice.String(),
			Features:     features,
		}
	}
	return PlanListResponse{Plans: responses}
}
