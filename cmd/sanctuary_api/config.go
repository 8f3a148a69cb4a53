package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/factory"
	"github.com/DjordjeVuckovic/sanctuary-hub/pkg/config/env"
	"github.com/DjordjeVuckovic/sanctuary-hub/pkg/pagination"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

type ApiConfig struct {
	SeedPath                    string
	SeedOnStart                 bool
	TreatMissingPreviousAsAdded bool
	SearchDefaultPageSize       int
	Tracing                     TracingConfig
	StorageConfig               *factory.StorageConfig
}

// LoadDotEnv must run before the server config is read
func (as *AppConfig) LoadDotEnv() {
	if err := env.LoadDotEnv(as.ENV, "cmd/sanctuary_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}
}

func (as *AppConfig) Load() (*ApiConfig, error) {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	pageSize := pagination.PageDefaultSize
	if raw := os.Getenv("SEARCH_DEFAULT_PAGE_SIZE"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil || pageSize < 1 || pageSize > pagination.PageMaxSize {
			return nil, fmt.Errorf("SEARCH_DEFAULT_PAGE_SIZE must be between 1 and %d, got %q", pagination.PageMaxSize, raw)
		}
	}

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "data/seed.yaml"
	}

	tracing := TracingConfig{
		Enabled:     os.Getenv("TRACING_ENABLED") == "true",
		Endpoint:    os.Getenv("OTLP_ENDPOINT"),
		ServiceName: "sanctuary-api",
	}
	if tracing.Enabled && tracing.Endpoint == "" {
		tracing.Endpoint = "localhost:4318"
	}

	return &ApiConfig{
		SeedPath:                    seedPath,
		SeedOnStart:                 os.Getenv("SEED_ON_START") == "true",
		TreatMissingPreviousAsAdded: os.Getenv("TREAT_MISSING_PREVIOUS_AS_ADDED") == "true",
		SearchDefaultPageSize:       pageSize,
		Tracing:                     tracing,
		StorageConfig:               storageCfg,
	}, nil
}
