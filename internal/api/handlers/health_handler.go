package handlers

import (
	"context"
	"net/http"
	"time"

	"gpa-tracker/internal/config"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether record storage is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	storage HealthChecker
	backend string
}

// NewHealthHandler creates a new health handler. backend names the
// configured storage backend in responses.
func NewHealthHandler(storage HealthChecker, backend string) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		backend: backend,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	cfg := config.Get()

	status := "healthy"
	storage := "healthy"
	if err := h.storage.Health(c.Request.Context()); err != nil {
		status = "degraded"
		storage = "unhealthy: " + err.Error()
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   cfg.App.Version,
		Services:  map[string]string{"storage:" + h.backend: storage},
	}

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck handles GET /ready
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	ready := h.storage.Health(c.Request.Context()) == nil

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
	})
}

// LivenessCheck handles GET /live
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
