// Package main Sanctuary Hub API
// @title Sanctuary Hub API
// @version 1.0
// @description FAQ and educational resource search, engagement tracking and content versioning for an animal sanctuary
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/analytics"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/diff"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/engagement"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/observe"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/router"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/search"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/seed"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/server"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/factory"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/versioning"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	appSettings.LoadDotEnv()

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(sCfg.LogLevel)

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	backend, err := factory.NewRepository(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage repository", "error", err, "storageType", cfg.StorageConfig.Type)
		os.Exit(1)
	}
	defer backend.Close()

	if cfg.SeedOnStart {
		if err := seedRepository(ctx, backend.Repository, cfg.SeedPath); err != nil {
			slog.Error("Failed to seed repository", "error", err, "path", cfg.SeedPath)
			os.Exit(1)
		}
	}

	observers := []observe.Observer{observe.NewLogger(slog.Default())}

	s := server.New(sCfg, backend.Health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	if cfg.Tracing.Enabled {
		tp, err := observe.NewTracerProvider(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			slog.Error("Failed to set up tracing", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				slog.Error("Failed to flush traces", "error", err)
			}
		}()
		s.SetupTracing(cfg.Tracing.ServiceName, tp)
		observers = append(observers, observe.NewTracer(tp))
		slog.Info("Tracing enabled", "endpoint", cfg.Tracing.Endpoint)
	}
	observer := observe.Multi(observers...)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Sanctuary Hub API is running")
	})

	repo := backend.Repository
	diffOpts := diff.Options{TreatMissingPreviousAsAllAdded: cfg.TreatMissingPreviousAsAdded}

	router.NewContentRouter(
		s.Echo,
		repo,
		search.NewService(repo, observer, cfg.SearchDefaultPageSize),
		engagement.NewRecorder(repo, observer),
	).Bind()
	router.NewVersionRouter(s.Echo, versioning.NewService(repo, versioning.NewHistory(), diffOpts, observer)).Bind()
	router.NewAnalyticsRouter(s.Echo, analytics.NewService(repo)).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func seedRepository(ctx context.Context, repo storage.Repository, path string) error {
	ds, err := seed.LoadFromFile(path)
	if err != nil {
		return err
	}
	records, err := ds.Records()
	if err != nil {
		return err
	}
	_, err = seed.Apply(ctx, repo, records)
	return err
}
