// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"addressable/internal/delivery/api/router/handler"
	"addressable/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
	HealthHandler  *handler.HealthHandler
	Registry       *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler *handler.AddressHandler
	healthHandler  *handler.HealthHandler
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
		healthHandler:  params.HealthHandler,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	apiV1 := e.Group("/api/v1")

	// Addresses of one owner
	ownerGroup := apiV1.Group("/owners/:ownerType/:ownerId")
	{
		ownerGroup.DELETE("", r.addressHandler.PurgeOwner)

		ownerGroup.GET("/addresses", r.addressHandler.ListAddresses)
		ownerGroup.POST("/addresses", r.addressHandler.CreateAddress)
		ownerGroup.DELETE("/addresses", r.addressHandler.FlushAddresses)
		ownerGroup.GET("/addresses/exists", r.addressHandler.HasAddresses)
		ownerGroup.GET("/addresses/representative", r.addressHandler.Representative)
		ownerGroup.GET("/addresses/flagged/:flag", r.addressHandler.FlaggedAddress)
		ownerGroup.PUT("/addresses/:id", r.addressHandler.UpdateAddress)
		ownerGroup.DELETE("/addresses/:id", r.addressHandler.DeleteAddress)
		ownerGroup.POST("/addresses/:id/restore", r.addressHandler.RestoreAddress)
		ownerGroup.GET("/addresses/:id/formatted", r.addressHandler.FormatAddress)
	}

	apiV1.GET("/addresses/nearby", r.addressHandler.FindNearbyOwners)
}
