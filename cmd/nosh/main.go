package main

import (
	"context"
	"log/slog"
	"os"

	"nosh/config"
	"nosh/internal/delivery"
	"nosh/internal/delivery/http"
	"nosh/internal/delivery/http/middleware"
	"nosh/internal/delivery/http/router/handler"
	"nosh/internal/domain/repository"
	"nosh/internal/infra/auth"
	"nosh/internal/infra/errlog"
	logs "nosh/internal/infra/log"
	"nosh/internal/infra/persistence/mongo"
	"nosh/internal/infra/tokenstore"
	"nosh/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
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
		mongo.New,
		newErrorSink,
	)
}

func newErrorSink(logger *slog.Logger) *errlog.Sink {
	return errlog.New(errlog.DefaultCapacity, logger)
}

// newTokenStore picks the refresh-token backend: Redis when configured,
// otherwise the in-process map, which starts empty on every restart and
// thereby invalidates all outstanding refresh tokens.
func newTokenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.RefreshTokenStore, error) {
	if cfg.Redis != nil {
		logger.Info("Using Redis refresh-token store", slog.String("addr", cfg.Redis.Addr))

		return tokenstore.NewRedisStore(ctx, cfg.Redis)
	}

	logger.Info("Using in-memory refresh-token store")

	return tokenstore.NewMemoryStore(), nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewUserRepository,
			mongo.NewStoreRepository,
			mongo.NewProductRepository,
			mongo.NewOrderRepository,
			mongo.NewReviewRepository,
			mongo.NewPartnerRepository,
			newTokenStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewBcryptHasher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewOrderService,
			impl.NewCatalogService,
			impl.NewReviewService,
			impl.NewPartnerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewOrderHandler,
			handler.NewStoreHandler,
			handler.NewProductHandler,
			handler.NewReviewHandler,
			handler.NewPartnerHandler,
			handler.NewMiscHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
