package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/WathsalaM369/stress-management-coach/internal/database"
	"github.com/WathsalaM369/stress-management-coach/internal/metrics"
	"github.com/WathsalaM369/stress-management-coach/internal/websocket"
)

// HealthHandler handles health check and metrics endpoints
type HealthHandler struct {
	db        *sql.DB
	wsHub     *websocket.Hub
	version   string
	startTime time.Time
}

// NewHealthHandler creates a new health handler. db and wsHub may be nil
// when the corresponding feature is disabled.
func NewHealthHandler(db *sql.DB, wsHub *websocket.Hub, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		wsHub:     wsHub,
		version:   version,
		startTime: time.Now(),
	}
}

// LivenessCheck returns basic liveness status
// @Summary Liveness check
// @Description Returns basic liveness status for Kubernetes probes
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.startTime).String(),
	})
}

// ReadinessCheck returns readiness status including dependencies
// @Summary Readiness check
// @Description Returns readiness status including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	components := gin.H{
		"scheduler": "healthy",
	}
	status := "healthy"
	statusCode := http.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			components["database"] = "unhealthy"
			status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
		} else {
			components["database"] = "healthy"
			components["database_pool"] = database.GetPoolStats(h.db)
		}
	} else {
		components["database"] = "disabled"
	}

	if h.wsHub != nil {
		components["websocket_clients"] = h.wsHub.ClientCount()
	}

	c.JSON(statusCode, gin.H{
		"status":     status,
		"version":    h.version,
		"uptime":     time.Since(h.startTime).String(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"components": components,
	})
}

// GetMetrics returns application metrics
// @Summary Get application metrics
// @Description Returns request, schedule and websocket counters
// @Tags metrics
// @Produce json
// @Success 200 {object} metrics.Snapshot
// @Router /metrics [get]
func (h *HealthHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.Global().GetSnapshot())
}
