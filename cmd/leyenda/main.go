package main

import (
	"context"
	"log/slog"
	"os"

	"leyenda/config"
	"leyenda/internal/delivery"
	"leyenda/internal/delivery/http"
	"leyenda/internal/delivery/http/middleware"
	"leyenda/internal/delivery/http/router/handler"
	"leyenda/internal/errors"
	"leyenda/internal/infra/auth"
	logs "leyenda/internal/infra/log"
	"leyenda/internal/infra/persistence/postgres"
	"leyenda/internal/migrations"
	"leyenda/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
			runMigrations,
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
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewCredentialRepository,
			postgres.NewRegionRepository,
			postgres.NewHotelRepository,
			postgres.NewRestaurantRepository,
			postgres.NewLegendRepository,
			postgres.NewMythStoryRepository,
			postgres.NewReviewRepository,
			postgres.NewEventPlaceRepository,
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
			impl.NewRegionService,
			impl.NewPlaceService,
			impl.NewStoryService,
			impl.NewReviewService,
			impl.NewEventPlaceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRegionHandler,
			handler.NewPlaceHandler,
			handler.NewStoryHandler,
			handler.NewReviewHandler,
			handler.NewEventPlaceHandler,
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

func runMigrations(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	if err := migrations.Run(sqlDB, cfg.Migrations.Path); err != nil {
		return err
	}

	logger.Info("Database schema is up to date", slog.String("path", cfg.Migrations.Path))

	return nil
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
