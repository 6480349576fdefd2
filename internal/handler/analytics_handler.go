package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fairclaim/complaint-api/internal/service"
)

// AnalyticsHandler exposes the admin usage aggregates.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler wires an analytics handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// rangePresets maps the ?range= query values to look-back windows.
var rangePresets = map[string]time.Duration{
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"90d": 90 * 24 * time.Hour,
}

func parseRange(c echo.Context) (time.Duration, bool) {
	preset := c.QueryParam("range")
	if preset == "" {
		preset = "30d"
	}
	window, ok := rangePresets[preset]
	return window, ok
}

// Summary handles GET /admin/analytics/summary.
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	window, ok := parseRange(c)
	if !ok {
		return Error(c, http.StatusBadRequest, "range must be one of 24h, 7d, 30d, 90d")
	}

	summary, err := h.analytics.Summary(c.Request().Context(), time.Now().Add(-window))
	if err != nil {
		if errors.Is(err, service.ErrAnalyticsDisabled) {
			return Error(c, http.StatusServiceUnavailable, "analytics persistence is not configured")
		}
		return Error(c, http.StatusInternalServerError, "failed to load analytics")
	}

	return Success(c, http.StatusOK, "ok", summary)
}

// Tools handles GET /admin/analytics/tools, the per-tool slice of the
// summary for the dashboard's tool table.
func (h *AnalyticsHandler) Tools(c echo.Context) error {
	window, ok := parseRange(c)
	if !ok {
		return Error(c, http.StatusBadRequest, "range must be one of 24h, 7d, 30d, 90d")
	}

	summary, err := h.analytics.Summary(c.Request().Context(), time.Now().Add(-window))
	if err != nil {
		if errors.Is(err, service.ErrAnalyticsDisabled) {
			return Error(c, http.StatusServiceUnavailable, "analytics persistence is not configured")
		}
		return Error(c, http.StatusInternalServerError, "failed to load analytics")
	}

	return Success(c, http.StatusOK, "ok", map[string]any{"since": summary.Since, "tools": summary.Tools})
}
