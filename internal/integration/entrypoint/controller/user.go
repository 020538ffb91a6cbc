package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-app/backend/internal/application/usecase/auth"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// UserController handles the authenticated user's account endpoints.
type UserController struct {
	getProfileUseCase     *auth.GetProfileUseCase
	changePasswordUseCase *auth.ChangePasswordUseCase
	deleteAccountUseCase  *auth.DeleteAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *auth.GetProfileUseCase,
	changePasswordUseCase *auth.ChangePasswordUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:     getProfileUseCase,
		changePasswordUseCase: changePasswordUseCase,
		deleteAccountUseCase:  deleteAccountUseCase,
	}
}

// Me handles GET /users/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), auth.GetProfileInput{
		UserID: userID,
	})
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// ChangePassword handles PUT /users/me/password requests.
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}

	if err := c.changePasswordUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteAccount handles DELETE /users/me requests.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.DeleteAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.DeleteAccountInput{
		UserID:       userID,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	}

	if err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Account deleted successfully",
	})
}
