package geocoding

import (
	"context"
	"log/slog"

	"addressable/config"
	"addressable/internal/domain/lifecycle"
	"addressable/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the dependencies of the geocoder.
type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Countries service.CountryDirectory
	Logger    *slog.Logger
}

// New builds the configured geocoder, with the Redis cache in front when enabled.
func New(params Params) service.Geocoder {
	cfg := params.Config.Geocoding
	geocoder := NewGoogleGeocoder(cfg, params.Countries)

	if !cfg.Enabled || !cfg.Cache.Enabled {
		return geocoder
	}

	client := NewRedisClient(cfg.Cache)
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Geocode cache unreachable, lookups will go to the provider",
					slog.String("addr", cfg.Cache.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewCachedGeocoder(geocoder, NewRedisCoordinateCache(client), cfg.Cache.TTL, params.Countries)
}
