// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/usecase/recurring"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// RecurringController handles recurring template endpoints, including the
// scheduler-guarded processing endpoint.
type RecurringController struct {
	createUseCase  *recurring.CreateTemplateUseCase
	listUseCase    *recurring.ListTemplatesUseCase
	updateUseCase  *recurring.UpdateTemplateUseCase
	deleteUseCase  *recurring.DeleteTemplateUseCase
	processUseCase *recurring.ProcessTemplatesUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	createUseCase *recurring.CreateTemplateUseCase,
	listUseCase *recurring.ListTemplatesUseCase,
	updateUseCase *recurring.UpdateTemplateUseCase,
	deleteUseCase *recurring.DeleteTemplateUseCase,
	processUseCase *recurring.ProcessTemplatesUseCase,
) *RecurringController {
	return &RecurringController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		processUseCase: processUseCase,
	}
}

// Create handles POST /recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidFrequency),
		})
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format, expected YYYY-MM-DD",
		})
		return
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format, expected YYYY-MM-DD",
			})
			return
		}
		endDate = &parsed
	}

	categoryID, err := dto.ParseUUIDPtr(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	walletID, err := dto.ParseUUIDPtr(req.WalletID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid wallet ID format",
		})
		return
	}
	creditCardID, err := dto.ParseUUIDPtr(req.CreditCardID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit card ID format",
		})
		return
	}

	input := recurring.CreateTemplateInput{
		UserID:       userID,
		Description:  req.Description,
		Amount:       decimal.NewFromFloat(req.Amount),
		Kind:         entity.EntryKind(req.Kind),
		Frequency:    entity.Frequency(req.Frequency),
		CategoryID:   categoryID,
		WalletID:     walletID,
		CreditCardID: creditCardID,
		StartDate:    startDate,
		EndDate:      endDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSchedulerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringResponse(output.Template))
}

// List handles GET /recurring requests.
func (c *RecurringController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurring.ListTemplatesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve recurring templates",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringListResponse(output.Templates))
}

// Update handles PATCH /recurring/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	templateID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid template ID format",
		})
		return
	}

	var req dto.UpdateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := recurring.UpdateTemplateInput{
		TemplateID:  templateID,
		UserID:      userID,
		Version:     req.Version,
		Description: req.Description,
		ClearEnd:    req.ClearEnd,
		Active:      req.Active,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Frequency != nil {
		frequency := entity.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &parsed
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSchedulerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringResponse(output.Template))
}

// Delete handles DELETE /recurring/:id requests. Templates are deactivated,
// never hard-deleted, so past materialized entries stay attributable.
func (c *RecurringController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	templateID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid template ID format",
		})
		return
	}

	input := recurring.DeleteTemplateInput{
		TemplateID: templateID,
		UserID:     userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleSchedulerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Process handles POST /recurring/process requests. The route is guarded by
// the scheduler secret middleware. A run with failures still reports the
// work that was committed before them, under a 500 status.
func (c *RecurringController) Process(ctx *gin.Context) {
	output, err := c.processUseCase.Execute(ctx.Request.Context(), recurring.ProcessTemplatesInput{
		Today:       time.Now().UTC(),
		RequesterIP: ctx.ClientIP(),
	})
	if err != nil {
		c.handleSchedulerError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Failed > 0 {
		status = http.StatusInternalServerError
	}
	ctx.JSON(status, dto.SchedulerRunResponse{
		Processed: output.Processed,
		Skipped:   output.Skipped,
		Failed:    output.Failed,
		Details:   output.Details,
	})
}

// handleSchedulerError handles scheduler errors and returns appropriate HTTP responses.
func (c *RecurringController) handleSchedulerError(ctx *gin.Context, err error) {
	var schErr *domainerror.SchedulerError
	if errors.As(err, &schErr) {
		ctx.JSON(schedulerErrorStatusCode(schErr.Code), dto.ErrorResponse{
			Error: schErr.Message,
			Code:  string(schErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// schedulerErrorStatusCode maps scheduler error codes to HTTP status codes. It
// is shared by the recurring and invoice controllers.
func schedulerErrorStatusCode(code domainerror.SchedulerErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecurringNotFound,
		domainerror.ErrCodeInvoiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRecurringConflict:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeInvalidDueDay:
		return http.StatusBadRequest
	case domainerror.ErrCodeSchedulerSecretMismatch:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
