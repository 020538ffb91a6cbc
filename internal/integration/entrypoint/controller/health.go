// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness of the API and its database.
type HealthController struct {
	dbHealthChecker func() bool
	startedAt       time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		startedAt:       time.Now().UTC(),
	}
}

// Check handles GET /health requests. The endpoint stays 200 even when the
// database is down so that probes can tell "degraded" from "dead".
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	dbStatus := "connected"
	if h.dbHealthChecker == nil || !h.dbHealthChecker() {
		status = "degraded"
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
