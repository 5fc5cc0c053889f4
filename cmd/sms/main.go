package main

import (
	"context"
	"log/slog"
	"os"

	"sms/config"
	"sms/internal/delivery"
	"sms/internal/delivery/api"
	"sms/internal/delivery/api/middleware"
	"sms/internal/delivery/api/router/handler"
	"sms/internal/infra/auth"
	logs "sms/internal/infra/log"
	"sms/internal/infra/persistence/postgres"
	"sms/internal/infra/ratelimit"
	"sms/internal/usecase/impl"

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
		postgres.New,
		ratelimit.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewStudentRepository,
			postgres.NewStaffRepository,
			postgres.NewAdmissionRepository,
			postgres.NewAnnouncementRepository,
			postgres.NewLMSRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAdmissionService,
			impl.NewAnnouncementService,
			impl.NewStudentService,
			impl.NewStaffService,
			impl.NewLMSService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewProfileMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAdmissionHandler,
			handler.NewAnnouncementHandler,
			handler.NewStudentHandler,
			handler.NewStaffHandler,
			handler.NewLMSHandler,
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
