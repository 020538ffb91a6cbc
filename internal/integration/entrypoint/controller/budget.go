// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/usecase/budget"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createUseCase *budget.CreateBudgetUseCase
	listUseCase   *budget.ListBudgetsUseCase
	updateUseCase *budget.UpdateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidBudgetPeriod),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	input := budget.CreateBudgetInput{
		UserID:       userID,
		CategoryID:   categoryID,
		LimitAmount:  decimal.NewFromFloat(req.LimitAmount),
		Month:        req.Month,
		Year:         req.Year,
		AlertPercent: req.AlertPercent,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// List handles GET /budgets requests. Month and year default to the current
// period when omitted.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	now := time.Now().UTC()
	month := int(now.Month())
	year := now.Year()

	if monthStr := ctx.Query("month"); monthStr != "" {
		if parsed, err := strconv.Atoi(monthStr); err == nil {
			month = parsed
		}
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if parsed, err := strconv.Atoi(yearStr); err == nil {
			year = parsed
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID:     budgetID,
		UserID:       userID,
		AlertPercent: req.AlertPercent,
	}
	if req.LimitAmount != nil {
		limit := decimal.NewFromFloat(*req.LimitAmount)
		input.LimitAmount = &limit
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	input := budget.DeleteBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
// Budgets reference categories, so category errors surface here too.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var planErr *domainerror.PlanningError
	if errors.As(err, &planErr) {
		ctx.JSON(planningErrorStatusCode(planErr.Code), dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := http.StatusBadRequest
		if catErr.Code == domainerror.ErrCodeCategoryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
