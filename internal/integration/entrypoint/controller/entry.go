// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/usecase/entry"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// dateLayout is the wire format for dates in query strings and bodies.
const dateLayout = "2006-01-02"

// EntryController handles entry endpoints.
type EntryController struct {
	createUseCase    *entry.CreateEntryUseCase
	listUseCase      *entry.ListEntriesUseCase
	getUseCase       *entry.GetEntryUseCase
	updateUseCase    *entry.UpdateEntryUseCase
	deleteUseCase    *entry.DeleteEntryUseCase
	summaryUseCase   *entry.GetSummaryUseCase
	statementUseCase *entry.GetStatementUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	createUseCase *entry.CreateEntryUseCase,
	listUseCase *entry.ListEntriesUseCase,
	getUseCase *entry.GetEntryUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
	summaryUseCase *entry.GetSummaryUseCase,
	statementUseCase *entry.GetStatementUseCase,
) *EntryController {
	return &EntryController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		getUseCase:       getUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		summaryUseCase:   summaryUseCase,
		statementUseCase: statementUseCase,
	}
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidEntryKind),
		})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
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
	goalID, err := dto.ParseUUIDPtr(req.GoalID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	input := entry.CreateEntryInput{
		UserID:              userID,
		Kind:                entity.EntryKind(req.Kind),
		Description:         req.Description,
		Amount:              decimal.NewFromFloat(req.Amount),
		Date:                date,
		PaymentMethod:       entity.PaymentMethod(req.PaymentMethod),
		InstallmentCount:    req.InstallmentCount,
		StartingInstallment: req.StartingInstallment,
		CategoryID:          categoryID,
		WalletID:            walletID,
		CreditCardID:        creditCardID,
		GoalID:              goalID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := entry.ListEntriesInput{
		UserID: userID,
	}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse(dateLayout, startDateStr); err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse(dateLayout, endDateStr); err == nil {
			input.EndDate = &endDate
		}
	}
	if categoryIDStr := ctx.Query("category_id"); categoryIDStr != "" {
		if categoryID, err := uuid.Parse(categoryIDStr); err == nil {
			input.CategoryID = &categoryID
		}
	}
	if kindStr := ctx.Query("kind"); kindStr != "" {
		kind := entity.EntryKind(kindStr)
		input.Kind = &kind
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries))
}

// Get handles GET /entries/:id requests.
func (c *EntryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), entry.GetEntryInput{
		EntryID: entryID,
		UserID:  userID,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Update handles PATCH /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := entry.UpdateEntryInput{
		EntryID:          entryID,
		UserID:           userID,
		Version:          req.Version,
		Description:      req.Description,
		InstallmentsPaid: req.InstallmentsPaid,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}
	categoryID, err := dto.ParseUUIDPtr(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	input.CategoryID = categoryID

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	input := entry.DeleteEntryInput{
		EntryID: entryID,
		UserID:  userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /entries/summary requests.
func (c *EntryController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := entry.GetSummaryInput{
		UserID: userID,
	}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse(dateLayout, startDateStr); err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse(dateLayout, endDateStr); err == nil {
			input.EndDate = &endDate
		}
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Totals))
}

// Statement handles GET /entries/statement requests. Both dates are required
// since the projection window is unbounded otherwise.
func (c *EntryController) Statement(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	from, err := time.Parse(dateLayout, ctx.Query("from"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter 'from' is required in YYYY-MM-DD format",
		})
		return
	}
	to, err := time.Parse(dateLayout, ctx.Query("to"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter 'to' is required in YYYY-MM-DD format",
		})
		return
	}

	output, err := c.statementUseCase.Execute(ctx.Request.Context(), entry.GetStatementInput{
		UserID: userID,
		From:   from,
		To:     to,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build statement",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatementResponse(output))
}

// handleEntryError handles entry errors and returns appropriate HTTP responses.
func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		statusCode := c.getStatusCodeForEntryError(entryErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForEntryError maps entry error codes to HTTP status codes.
func (c *EntryController) getStatusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEntryConflict:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidEntryKind,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidInstallments,
		domainerror.ErrCodeEntryCategoryNotFound,
		domainerror.ErrCodeEntryWalletNotFound,
		domainerror.ErrCodeEntryCardNotFound,
		domainerror.ErrCodeEntryGoalNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
