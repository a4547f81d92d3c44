package main

import (
	"context"
	"log/slog"
	"os"

	"portfolio/config"
	"portfolio/internal/delivery"
	"portfolio/internal/delivery/api"
	"portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/router/handler"
	"portfolio/internal/delivery/api/validator"
	"portfolio/internal/domain/session"
	"portfolio/internal/infra/analytics"
	authfirebase "portfolio/internal/infra/auth/firebase"
	"portfolio/internal/infra/firebase"
	logs "portfolio/internal/infra/log"
	"portfolio/internal/infra/persistence"
	"portfolio/internal/infra/pubsub"
	"portfolio/internal/usecase/impl"

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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		firebase.NewApp,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			authfirebase.NewAuthService,
			pubsub.NewEventPublisher,
			analytics.NewAnalyticsService,
			newSessionRegistry,
		),
	)
}

// newSessionRegistry creates the session registry and closes every session on shutdown
func newSessionRegistry(lc fx.Lifecycle) *session.Registry {
	registry := session.NewRegistry()
	lc.Append(fx.StopHook(registry.CloseAll))

	return registry
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewSettingsService,
			impl.NewBookService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			validator.New,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRequestValidator,
			handler.NewSiteHandler,
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewSettingsHandler,
			handler.NewBookHandler,
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
