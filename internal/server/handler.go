// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/vukan322/devinsights/internal/analyze"
	"github.com/vukan322/devinsights/internal/core"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Handler struct {
	analyzer *analyze.Analyzer
	logger   *logrus.Logger
}

func NewHandler(analyzer *analyze.Analyzer, logger *logrus.Logger) *Handler {
	return &Handler{analyzer: analyzer, logger: logger}
}

// Register wires routes and the middleware chain onto e.
func (h *Handler) Register(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(LoggingMiddleware(h.logger))
	e.Use(MetricsMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/api/users/:username/insights", h.GetInsights)
	e.GET("/api/compare", h.GetComparison)
}

// GetInsights runs a full analysis for one username.
// Query param "range" selects the window preset, defaulting to year.
func (h *Handler) GetInsights(c echo.Context) error {
	username := c.Param("username")
	preset, err := core.ParsePreset(c.QueryParam("range"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_RANGE", err.Error()))
	}

	start := time.Now()
	report, err := h.analyzer.Analyze(c.Request().Context(), username, preset)
	observeAnalysis(start, err)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// GetComparison analyzes several users ("users" is a comma-separated list)
// and scores them head to head.
func (h *Handler) GetComparison(c echo.Context) error {
	raw := strings.Split(c.QueryParam("users"), ",")
	usernames := make([]string, 0, len(raw))
	for _, u := range raw {
		if u = strings.TrimSpace(u); u != "" {
			usernames = append(usernames, u)
		}
	}
	if len(usernames) < 2 {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_USERS", "users must list at least 2 usernames"))
	}

	preset, err := core.ParsePreset(c.QueryParam("range"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_RANGE", err.Error()))
	}

	comparison, err := h.analyzer.Compare(c.Request().Context(), usernames, preset)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, comparison)
}

// fail maps classified fetch errors onto HTTP statuses.
func (h *Handler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, core.ErrInvalidUsername):
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_USERNAME", err.Error()))
	case errors.Is(err, core.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, toErrorResponse("NOT_FOUND", "user not found"))
	case errors.Is(err, core.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, toErrorResponse("RATE_LIMITED", "GitHub rate limit exceeded"))
	}
	h.logger.WithError(err).Error("analysis failed")
	return c.JSON(http.StatusBadGateway, toErrorResponse("UPSTREAM_ERROR", err.Error()))
}

func toErrorResponse(code, message string) errorResponse {
	return errorResponse{Error: errorBody{Code: code, Message: message}}
}
