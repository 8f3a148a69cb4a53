package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/seed"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/factory"
)

func main() {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ds, err := seed.LoadFromFile(cfg.DatasetPath)
	if err != nil {
		slog.Error("failed to read dataset", "error", err, "path", cfg.DatasetPath)
		os.Exit(1)
	}
	records, err := ds.Records()
	if err != nil {
		slog.Error("dataset is invalid", "error", err, "dataset", ds.Name)
		os.Exit(1)
	}

	slog.Info("Creating repository", "storageType", cfg.StorageConfig.Type)
	backend, err := factory.NewRepository(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to create repository", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	if cfg.Replace {
		if err := backend.Repository.ClearAll(ctx); err != nil {
			slog.Error("failed to clear repository", "error", err)
			os.Exit(1)
		}
	}

	n, err := seed.Apply(ctx, backend.Repository, records)
	if err != nil {
		slog.Error("failed to import dataset", "error", err)
		os.Exit(1)
	}

	slog.Info("Import finished", "dataset", ds.Name, "imported", n, "total", len(records))
}
