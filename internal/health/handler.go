// Package health exposes the liveness endpoint.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avsafety/peer-review/internal/database"
)

// checkTimeout bounds the database ping so a stuck pool can't hang the endpoint.
const checkTimeout = 5 * time.Second

// Handler serves GET /health.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a health handler over db.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Response is the health check body.
type Response struct {
	Status string `json:"status"`
}

// Check reports ok when the database answers a ping, 503 otherwise.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, Response{Status: "ok"})
}
