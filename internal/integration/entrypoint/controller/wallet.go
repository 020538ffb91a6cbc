// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/usecase/wallet"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// WalletController handles wallet endpoints.
type WalletController struct {
	createUseCase *wallet.CreateWalletUseCase
	listUseCase   *wallet.ListWalletsUseCase
	updateUseCase *wallet.UpdateWalletUseCase
	deleteUseCase *wallet.DeleteWalletUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	createUseCase *wallet.CreateWalletUseCase,
	listUseCase *wallet.ListWalletsUseCase,
	updateUseCase *wallet.UpdateWalletUseCase,
	deleteUseCase *wallet.DeleteWalletUseCase,
) *WalletController {
	return &WalletController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /wallets requests.
func (c *WalletController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingWalletFields),
		})
		return
	}

	input := wallet.CreateWalletInput{
		UserID:         userID,
		Name:           req.Name,
		Type:           entity.WalletType(req.Type),
		InitialBalance: decimal.NewFromFloat(req.InitialBalance),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanningError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWalletResponse(output.Wallet))
}

// List handles GET /wallets requests.
func (c *WalletController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), wallet.ListWalletsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve wallets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletListResponse(output.Wallets))
}

// Update handles PATCH /wallets/:id requests.
func (c *WalletController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	walletID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid wallet ID format",
		})
		return
	}

	var req dto.UpdateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := wallet.UpdateWalletInput{
		WalletID: walletID,
		UserID:   userID,
		Name:     req.Name,
	}
	if req.Type != nil {
		walletType := entity.WalletType(*req.Type)
		input.Type = &walletType
	}
	if req.InitialBalance != nil {
		balance := decimal.NewFromFloat(*req.InitialBalance)
		input.InitialBalance = &balance
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlanningError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// Delete handles DELETE /wallets/:id requests.
func (c *WalletController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	walletID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid wallet ID format",
		})
		return
	}

	input := wallet.DeleteWalletInput{
		WalletID: walletID,
		UserID:   userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handlePlanningError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handlePlanningError handles planning errors and returns appropriate HTTP responses.
func (c *WalletController) handlePlanningError(ctx *gin.Context, err error) {
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

// planningErrorStatusCode maps planning error codes to HTTP status codes. It is
// shared by the wallet, credit card and budget controllers.
func planningErrorStatusCode(code domainerror.PlanningErrorCode) int {
	switch code {
	case domainerror.ErrCodeWalletNotFound,
		domainerror.ErrCodeCardNotFound,
		domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetExists:
		return http.StatusConflict
	case domainerror.ErrCodeMissingWalletFields,
		domainerror.ErrCodeInvalidCardDay,
		domainerror.ErrCodeMissingCardFields,
		domainerror.ErrCodeInvalidBudgetPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
