package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger probes one downstream dependency.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	database Pinger
	accounts Pinger
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(database, accounts Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		database: database,
		accounts: accounts,
		logger:   logger,
	}
}

// HealthCheck performs a basic health check
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "identity-service",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessCheck probes the database and the accounts service.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()
	checks := make(map[string]HealthStatus)

	checks["database"] = h.probe(ctx, h.database)
	checks["accounts"] = h.probe(ctx, h.accounts)

	allHealthy := true
	for _, check := range checks {
		if check.Status != "healthy" {
			allHealthy = false
			break
		}
	}

	response := ReadinessResponse{
		Status:    getOverallStatus(allHealthy),
		Timestamp: time.Now(),
		Service:   "identity-service",
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !allHealthy {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// LivenessCheck performs a liveness check
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "identity-service",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) probe(ctx context.Context, dep Pinger) HealthStatus {
	if dep == nil {
		return HealthStatus{Status: "unknown", Message: "not configured"}
	}

	start := time.Now()
	if err := dep.HealthCheck(ctx); err != nil {
		h.logger.Warn("readiness probe failed", "error", err)
		return HealthStatus{
			Status:  "unhealthy",
			Message: err.Error(),
			Latency: time.Since(start).String(),
		}
	}

	return HealthStatus{
		Status:  "healthy",
		Message: "connected",
		Latency: time.Since(start).String(),
	}
}

// Helper functions
func getOverallStatus(allHealthy bool) string {
	if allHealthy {
		return "ready"
	}
	return "not_ready"
}

// Response types
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Latency string `json:"latency,omitempty"`
}

// startTime is set when the service starts
var startTime = time.Now()
