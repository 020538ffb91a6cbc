// Package plan contains use cases for subscription plans.
package plan

import (
	"context"
	"fmt"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// ListPlansOutput represents the output of listing plans.
type ListPlansOutput struct {
	Plans []*entity.Plan
}

// ListPlansUseCase lists the seeded subscription plans. The endpoint is
// public reference data.
type ListPlansUseCase struct {
	planRepo adapter.PlanRepository
}

// NewListPlansUseCase creates a new ListPlansUseCase instance.
func NewListPlansUseCase(planRepo adapter.PlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the plan listing.
func (uc *ListPlansUseCase) Execute(ctx context.Context) (*ListPlansOutput, error) {
	plans, err := uc.planRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return &ListPlansOutput{
		Plans: plans,
	}, nil
}
