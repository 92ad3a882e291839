package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Pinger is a dependency the readiness check can reach
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db      *gorm.DB
	archive Pinger
}

// NewHealthHandler creates a new health handler. archive may be nil.
func NewHealthHandler(db *gorm.DB, archive Pinger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		archive: archive,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services := h.check(c.Request.Context())
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  services,
	}
	for _, state := range services {
		if state != "healthy" {
			response.Status = "unhealthy"
		}
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	services := make(map[string]string)
	if h.db == nil {
		services["database"] = "error: not configured"
	} else if sqlDB, err := h.db.DB(); err != nil {
		services["database"] = "error: " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		services["database"] = "error: " + err.Error()
	} else {
		services["database"] = "healthy"
	}

	if h.archive != nil {
		if err := h.archive.Ping(ctx); err != nil {
			services["archive"] = "error: " + err.Error()
		} else {
			services["archive"] = "healthy"
		}
	}
	return services
}
