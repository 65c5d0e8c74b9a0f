package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storeadmin-service/internal/pkg/health"
)

// HealthHandler serves GET /healthz.
type HealthHandler struct {
	checker health.Checker
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(checker health.Checker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{checker: checker, logger: logger}
}

// Check reports 200 when the database answers and 503 otherwise.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.checker.Check(c.Request.Context()); err != nil {
		h.logger.WarnContext(c.Request.Context(), "health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
