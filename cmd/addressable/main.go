package main

import (
	"context"
	"log/slog"
	"os"

	"addressable/config"
	"addressable/internal/delivery"
	"addressable/internal/delivery/api"
	"addressable/internal/delivery/api/router/handler"
	"addressable/internal/domain/entity"
	"addressable/internal/infra/country"
	"addressable/internal/infra/geocoding"
	logs "addressable/internal/infra/log"
	"addressable/internal/infra/metrics"
	"addressable/internal/infra/persistence/postgres"
	"addressable/internal/usecase/impl"
	"addressable/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRegistry,
		metrics.FromConfig,
		metrics.HTTPFromConfig,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAddressRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			country.NewDirectory,
			geocoding.New,
			newFlagSet,
			validation.New,
		),
	)
}

// newFlagSet resolves the configured role flags; an unsupported name stops startup.
func newFlagSet(cfg *config.Config) (entity.FlagSet, error) {
	flags, err := entity.ParseFlags(cfg.Addresses.Flags)
	if err != nil {
		return entity.FlagSet{}, errors.Wrap(err, "invalid addresses.flags")
	}

	return flags, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOwnerRegistryFromConfig,
			impl.NewAddressService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
