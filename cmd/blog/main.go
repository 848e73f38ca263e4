package main

import (
	"context"
	"log/slog"
	"os"

	"blog/config"
	"blog/internal/auth"
	"blog/internal/delivery"
	"blog/internal/delivery/http"
	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/router/handler"
	"blog/internal/domain/service"
	infraauth "blog/internal/infra/auth"
	logs "blog/internal/infra/log"
	"blog/internal/infra/persistence/postgres"
	"blog/internal/infra/qrcode"
	"blog/internal/infra/sanitize"
	"blog/internal/usecase/impl"

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
			postgres.Migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPostRepository,
			postgres.NewCommentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			infraauth.NewBcryptHasher,
			infraauth.NewJWTService,
			sanitize.New,
			qrcode.New,
			newGate,
		),
	)
}

// newGate wires the authorization gate from configuration.
func newGate(cfg *config.Config, tokens service.TokenService) *auth.Gate {
	return auth.NewGate(cfg.Auth.AdminKey, tokens)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPostService,
			impl.NewCommentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPostHandler,
			handler.NewCommentHandler,
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
