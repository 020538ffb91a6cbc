// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/usecase/notification"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles in-app notification endpoints.
type NotificationController struct {
	listUseCase        *notification.ListNotificationsUseCase
	markReadUseCase    *notification.MarkReadUseCase
	markAllReadUseCase *notification.MarkAllReadUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	markReadUseCase *notification.MarkReadUseCase,
	markAllReadUseCase *notification.MarkAllReadUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:        listUseCase,
		markReadUseCase:    markReadUseCase,
		markAllReadUseCase: markAllReadUseCase,
	}
}

// List handles GET /notifications requests.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), notification.ListNotificationsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output.Notifications, output.UnreadCount))
}

// MarkRead handles PUT /notifications/:id/read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID format",
		})
		return
	}

	input := notification.MarkReadInput{
		NotificationID: notificationID,
		UserID:         userID,
	}

	if err := c.markReadUseCase.Execute(ctx.Request.Context(), input); err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Notification not found",
			Code:  string(domainerror.ErrCodeNotificationNotFound),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Notification marked as read",
	})
}

// MarkAllRead handles POST /notifications/read-all requests.
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	if err := c.markAllReadUseCase.Execute(ctx.Request.Context(), notification.MarkAllReadInput{
		UserID: userID,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to mark notifications as read",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "All notifications marked as read",
	})
}
