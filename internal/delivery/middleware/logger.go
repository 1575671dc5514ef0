package middleware

import (
	"log/slog"
	"time"

	"addressable/config"
	deliverycontext "addressable/internal/delivery/context"
	"addressable/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request and feeds the request metrics.
type LoggerMiddleware struct {
	logger  *slog.Logger
	metrics *metrics.HTTPMetrics
	debug   bool
}

// NewLoggerMiddleware creates a new logger middleware. metrics may be nil.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config, httpMetrics *metrics.HTTPMetrics) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		metrics: httpMetrics,
		debug:   cfg.Env.Debug,
	}
}

// Handle times the request. Successful requests are only logged in debug mode.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// resolve the status before it is recorded
			c.Error(err)
		}

		elapsed := time.Since(start)
		status := c.Response().Status
		m.metrics.ObserveRequest(c.Request().Method, c.Path(), status, elapsed)

		if m.debug || status >= 400 {
			m.logRequest(c, status, elapsed, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
