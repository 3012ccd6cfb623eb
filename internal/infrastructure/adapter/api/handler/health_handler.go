package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/dto"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/database"
)

// DatabaseChecker reports database reachability and connection pool usage
type DatabaseChecker interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// PoolResponse is the connection pool sample exposed by the health check
type PoolResponse struct {
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"max_open"`
	WaitCount int64 `json:"wait_count"`
}

// HealthResponse describes service readiness
type HealthResponse struct {
	Database string       `json:"database"`
	Pool     PoolResponse `json:"pool"`
	Gateways []string     `json:"gateways"`
}

// HealthHandler answers liveness and readiness checks
type HealthHandler struct {
	db       DatabaseChecker
	gateways []string
	logger   coreport.Logger
}

// NewHealthHandler creates a new health handler; gateways lists the registered gateway names
func NewHealthHandler(db DatabaseChecker, gateways []string, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:       db,
		gateways: gateways,
		logger:   logger,
	}
}

// Health handles GET /healthz
func (h *HealthHandler) Health(c *gin.Context) {
	health := HealthResponse{Database: "up", Gateways: h.gateways}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"dependency": "database",
			"error":      err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   "database unavailable",
			Code:    domainerr.CodeInternalServer,
			Message: "Service unavailable",
			Status:  http.StatusServiceUnavailable,
		})
		return
	}

	pool := h.db.PoolMetrics()
	health.Pool = PoolResponse{
		Open:      pool.OpenConnections,
		InUse:     pool.InUse,
		Idle:      pool.IdleConnections,
		MaxOpen:   pool.MaxOpenConnections,
		WaitCount: pool.WaitCount,
	}

	respond(c, http.StatusOK, "ok", health)
}
