package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"innkeeper/config"
	"innkeeper/internal/delivery"
	"innkeeper/internal/delivery/http"
	"innkeeper/internal/delivery/http/middleware"
	"innkeeper/internal/delivery/http/router/handler"
	"innkeeper/internal/infra/auth"
	logs "innkeeper/internal/infra/log"
	"innkeeper/internal/infra/persistence/postgres"
	"innkeeper/internal/infra/pubsub"
	"innkeeper/internal/infra/qrcode"
	"innkeeper/internal/usecase/impl"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewHotelRepository,
			postgres.NewBookingRepository,
			postgres.NewContactRepository,
			postgres.NewNewsletterRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewHotelService,
			impl.NewBookingService,
			impl.NewContactService,
			impl.NewNewsletterService,
			impl.NewSeedService,
			impl.NewHealthService,
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
			handler.NewHotelHandler,
			handler.NewBookingHandler,
			handler.NewContactHandler,
			handler.NewNewsletterHandler,
			handler.NewSeedHandler,
			handler.NewSystemHandler,
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
				os.Exit(1)
			}
		}()
	}
}
