package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/factory"
	"github.com/DjordjeVuckovic/sanctuary-hub/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type ContentImportConfig struct {
	DatasetPath string
	// Replace wipes the store before importing
	Replace bool
	factory.StorageConfig
}

func (as *AppConfig) Load() (*ContentImportConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/content_import/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	datasetPath := os.Getenv("DATASET_PATH")
	if datasetPath == "" {
		datasetPath = os.Getenv("SEED_PATH")
	}
	if datasetPath == "" {
		return nil, fmt.Errorf("DATASET_PATH environment variable is not set")
	}

	return &ContentImportConfig{
		DatasetPath:   datasetPath,
		Replace:       os.Getenv("IMPORT_REPLACE") == "true",
		StorageConfig: *storageCfg,
	}, nil
}
