// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
)

// SchedulerSecretHeader carries the shared secret for scheduler endpoints.
const SchedulerSecretHeader = "X-Scheduler-Secret"

// SchedulerMiddleware guards the scheduler endpoints with a shared secret.
// Rejected calls are recorded in the integration log with the requester IP.
type SchedulerMiddleware struct {
	secret  string
	logRepo adapter.IntegrationLogRepository
}

// NewSchedulerMiddleware creates a new scheduler middleware instance.
func NewSchedulerMiddleware(secret string, logRepo adapter.IntegrationLogRepository) *SchedulerMiddleware {
	return &SchedulerMiddleware{
		secret:  secret,
		logRepo: logRepo,
	}
}

// Authenticate returns a Gin middleware handler that checks the scheduler secret.
// The integration name identifies which scheduler the guarded route belongs to.
func (m *SchedulerMiddleware) Authenticate(integration string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(SchedulerSecretHeader)
		if m.secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(m.secret)) != 1 {
			m.auditRejection(c, integration)
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid scheduler secret",
				Code:  string(domainerror.ErrCodeSchedulerSecretMismatch),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// auditRejection records a failed scheduler authentication attempt.
func (m *SchedulerMiddleware) auditRejection(c *gin.Context, integration string) {
	log := entity.NewIntegrationLog(integration, c.ClientIP())
	log.Status = entity.IntegrationStatusError
	log.Message = "scheduler secret mismatch"

	if err := m.logRepo.Create(c.Request.Context(), log); err != nil {
		slog.Error("failed to record scheduler audit log",
			"integration", integration,
			"error", err,
		)
	}
}
