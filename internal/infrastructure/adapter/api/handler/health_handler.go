package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	"github.com/timelocked/vault-service/internal/infrastructure/adapter/api/dto"
)

// DatabaseHealthChecker is the slice of the database manager the health
// probe needs
type DatabaseHealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health probe HTTP requests
type HealthHandler struct {
	dbChecker DatabaseHealthChecker
	logger    coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(
	dbChecker DatabaseHealthChecker,
	logger coreport.Logger,
) *HealthHandler {
	return &HealthHandler{
		dbChecker: dbChecker,
		logger:    logger,
	}
}

// Check handles the GET /health endpoint
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.dbChecker.HealthCheck(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})

		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "unavailable",
			Database: "down",
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "up",
	})
}
