package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storeadmin-service/internal/app/analytics/queries/get_summary"
)

// AnalyticsHandler serves /api/analytics.
type AnalyticsHandler struct {
	getSummary *get_summary.Query
	logger     *slog.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(getSummary *get_summary.Query, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{getSummary: getSummary, logger: logger}
}

// Summary handles GET /api/analytics?period=day|week|month|year.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.getSummary.Execute(c.Request.Context(), &get_summary.Request{Period: c.Query("period")})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
