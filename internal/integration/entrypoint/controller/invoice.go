// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/usecase/invoice"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// InvoiceController handles bill invoice endpoints, including the
// scheduler-guarded reminder endpoint.
type InvoiceController struct {
	createUseCase  *invoice.CreateInvoiceUseCase
	listUseCase    *invoice.ListInvoicesUseCase
	updateUseCase  *invoice.UpdateInvoiceUseCase
	payUseCase     *invoice.PayInvoiceUseCase
	deleteUseCase  *invoice.DeleteInvoiceUseCase
	processUseCase *invoice.ProcessRemindersUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	createUseCase *invoice.CreateInvoiceUseCase,
	listUseCase *invoice.ListInvoicesUseCase,
	updateUseCase *invoice.UpdateInvoiceUseCase,
	payUseCase *invoice.PayInvoiceUseCase,
	deleteUseCase *invoice.DeleteInvoiceUseCase,
	processUseCase *invoice.ProcessRemindersUseCase,
) *InvoiceController {
	return &InvoiceController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		payUseCase:     payUseCase,
		deleteUseCase:  deleteUseCase,
		processUseCase: processUseCase,
	}
}

// Create handles POST /invoices requests.
func (c *InvoiceController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidDueDay),
		})
		return
	}

	input := invoice.CreateInvoiceInput{
		UserID:      userID,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		DueDay:      req.DueDay,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSchedulerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(output.Invoice))
}

// List handles GET /invoices requests.
func (c *InvoiceController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), invoice.ListInvoicesInput{
		UserID: userID,
		Today:  time.Now().UTC(),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve invoices",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(output.Invoices))
}

// Update handles PATCH /invoices/:id requests.
func (c *InvoiceController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := invoice.UpdateInvoiceInput{
		InvoiceID:   invoiceID,
		UserID:      userID,
		Description: req.Description,
		DueDay:      req.DueDay,
		Active:      req.Active,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSchedulerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// Pay handles POST /invoices/:id/pay requests.
func (c *InvoiceController) Pay(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), invoice.PayInvoiceInput{
		InvoiceID: invoiceID,
		UserID:    userID,
		PaidAt:    time.Now().UTC(),
	})
	if err != nil {
		c.handleSchedulerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// Delete handles DELETE /invoices/:id requests.
func (c *InvoiceController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	input := invoice.DeleteInvoiceInput{
		InvoiceID: invoiceID,
		UserID:    userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleSchedulerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Process handles POST /invoices/process requests. The route is guarded by
// the scheduler secret middleware. Per-user failures do not hide the
// reminders already delivered; they surface as a 500 with counts intact.
func (c *InvoiceController) Process(ctx *gin.Context) {
	output, err := c.processUseCase.Execute(ctx.Request.Context(), invoice.ProcessRemindersInput{
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
	ctx.JSON(status, dto.ReminderRunResponse{
		UsersNotified: output.UsersNotified,
		InvoicesDue:   output.InvoicesDue,
		Failed:        output.Failed,
		Details:       output.Details,
	})
}

// handleSchedulerError handles scheduler errors and returns appropriate HTTP responses.
func (c *InvoiceController) handleSchedulerError(ctx *gin.Context, err error) {
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
