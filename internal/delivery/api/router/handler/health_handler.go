package handler

import (
	"context"
	"net/http"
	"time"

	"addressable/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB *gorm.DB
}

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	ping func(ctx context.Context) error
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		ping: func(ctx context.Context) error {
			sqlDB, err := params.DB.DB()
			if err != nil {
				return err
			}

			return sqlDB.PingContext(ctx)
		},
	}
}

// HealthCheck answers 200 when the database responds, 503 otherwise.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "database is not reachable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "ok",
	})
}
