// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/usecase/goal"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	createUseCase *goal.CreateGoalUseCase
	listUseCase   *goal.ListGoalsUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
	inviteUseCase *goal.InviteMemberUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	inviteUseCase *goal.InviteMemberUseCase,
) *GoalController {
	return &GoalController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		inviteUseCase: inviteUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	var deadline *time.Time
	if req.Deadline != nil && *req.Deadline != "" {
		parsed, err := time.Parse(dateLayout, *req.Deadline)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid deadline format, expected YYYY-MM-DD",
			})
			return
		}
		deadline = &parsed
	}

	input := goal.CreateGoalInput{
		UserID:       userID,
		Title:        req.Title,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
		Deadline:     deadline,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// List handles GET /goals requests. Owned and invited goals are returned
// together.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests, returning the goal with its members
// and per-member contributions.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalDetailResponse(output.Detail))
}

// Update handles PATCH /goals/:id requests. Only the owner may update.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:        goalID,
		UserID:        userID,
		Title:         req.Title,
		ClearDeadline: req.ClearDeadline,
	}
	if req.TargetAmount != nil {
		target := decimal.NewFromFloat(*req.TargetAmount)
		input.TargetAmount = &target
	}
	if req.Deadline != nil && *req.Deadline != "" {
		parsed, err := time.Parse(dateLayout, *req.Deadline)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid deadline format, expected YYYY-MM-DD",
			})
			return
		}
		input.Deadline = &parsed
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests. Only the owner may delete.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	input := goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Invite handles POST /goals/:id/invite requests.
func (c *GoalController) Invite(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.InviteMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := goal.InviteMemberInput{
		GoalID: goalID,
		UserID: userID,
		Email:  req.Email,
	}

	if _, err := c.inviteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{
		Message: "Member invited successfully",
	})
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound,
		domainerror.ErrCodeInviteeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotGoalOwner:
		return http.StatusForbidden
	case domainerror.ErrCodeMemberAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeCannotInviteSelf:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
