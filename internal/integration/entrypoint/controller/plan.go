// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-app/backend/internal/application/usecase/plan"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
)

// PlanController handles the public subscription plan endpoint.
type PlanController struct {
	listUseCase *plan.ListPlansUseCase
}

// NewPlanController creates a new plan controller instance.
func NewPlanController(listUseCase *plan.ListPlansUseCase) *PlanController {
	return &PlanController{
		listUseCase: listUseCase,
	}
}

// List handles GET /plans requests. The endpoint is public.
func (c *PlanController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve plans",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanListResponse(output.Plans))
}
