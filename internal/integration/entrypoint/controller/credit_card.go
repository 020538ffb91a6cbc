// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/usecase/creditcard"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// CreditCardController handles credit card endpoints.
type CreditCardController struct {
	createUseCase *creditcard.CreateCardUseCase
	listUseCase   *creditcard.ListCardsUseCase
	updateUseCase *creditcard.UpdateCardUseCase
	deleteUseCase *creditcard.DeleteCardUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(
	createUseCase *creditcard.CreateCardUseCase,
	listUseCase *creditcard.ListCardsUseCase,
	updateUseCase *creditcard.UpdateCardUseCase,
	deleteUseCase *creditcard.DeleteCardUseCase,
) *CreditCardController {
	return &CreditCardController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /credit-cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCardFields),
		})
		return
	}

	paymentWalletID, err := dto.ParseUUIDPtr(req.PaymentWalletID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment wallet ID format",
		})
		return
	}

	input := creditcard.CreateCardInput{
		UserID:          userID,
		Name:            req.Name,
		Brand:           req.Brand,
		Limit:           decimal.NewFromFloat(req.Limit),
		ClosingDay:      req.ClosingDay,
		DueDay:          req.DueDay,
		PaymentWalletID: paymentWalletID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanningError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.Card))
}

// List handles GET /credit-cards requests.
func (c *CreditCardController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), creditcard.ListCardsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve credit cards",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardListResponse(output.Cards))
}

// Update handles PATCH /credit-cards/:id requests.
func (c *CreditCardController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit card ID format",
		})
		return
	}

	var req dto.UpdateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	paymentWalletID, err := dto.ParseUUIDPtr(req.PaymentWalletID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment wallet ID format",
		})
		return
	}

	input := creditcard.UpdateCardInput{
		CardID:          cardID,
		UserID:          userID,
		Name:            req.Name,
		Brand:           req.Brand,
		ClosingDay:      req.ClosingDay,
		DueDay:          req.DueDay,
		PaymentWalletID: paymentWalletID,
	}
	if req.Limit != nil {
		limit := decimal.NewFromFloat(*req.Limit)
		input.Limit = &limit
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanningError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.Card))
}

// Delete handles DELETE /credit-cards/:id requests.
func (c *CreditCardController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit card ID format",
		})
		return
	}

	input := creditcard.DeleteCardInput{
		CardID: cardID,
		UserID: userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handlePlanningError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handlePlanningError handles planning errors and returns appropriate HTTP responses.
func (c *CreditCardController) handlePlanningError(ctx *gin.Context, err error) {
	var planErr *domainerror.PlanningError
	if errors.As(err, &planErr) {
		ctx.JSON(planningErrorStatusCode(planErr.Code), dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
