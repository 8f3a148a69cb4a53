package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/bench/report"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/bench/runner"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/bench/suite"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/search"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/seed"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/factory"
	"github.com/DjordjeVuckovic/sanctuary-hub/pkg/config/env"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/search_bench/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	kValues, err := cfg.parseKValues()
	if err != nil {
		slog.Error("Invalid k values", "error", err)
		os.Exit(1)
	}

	ts, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration", "error", err)
		os.Exit(1)
	}
	backend, err := factory.NewRepository(ctx, storageCfg)
	if err != nil {
		slog.Error("Failed to create repository", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	if err := loadSeed(ctx, backend.Repository, cfg.SeedPath); err != nil {
		slog.Error("Failed to load dataset", "path", cfg.SeedPath, "error", err)
		os.Exit(1)
	}

	runCfg := runner.Config{
		KValues:            kValues,
		RelevanceThreshold: runner.DefaultRelevanceThreshold,
		WarmupRuns:         cfg.Warmup,
		Runs:               max(cfg.Runs, 1),
	}

	slog.Info("Running benchmark", "suite", ts.Name, "queries", len(ts.Queries), "runs", runCfg.Runs)
	searcher := search.NewService(backend.Repository, nil, 0)
	br := runner.New(runCfg, searcher).Run(ctx, ts)

	meta := report.BenchMeta{
		Storage:     string(storageCfg.Type),
		Corpus:      corpusInfo(ctx, backend.Repository),
		Environment: report.NewEnvironmentInfo(),
	}
	r := report.Generate(br, meta)

	if err := report.WriteTable(r, os.Stdout); err != nil {
		slog.Error("Failed to write report", "error", err)
		os.Exit(1)
	}

	if cfg.Output != "" {
		if err := report.WriteJSON(r, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("JSON report written", "path", cfg.Output)
	}

	if br.Failed() > 0 {
		os.Exit(1)
	}
}

func loadSeed(ctx context.Context, repo storage.Repository, path string) error {
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

func corpusInfo(ctx context.Context, repo storage.Repository) report.CorpusInfo {
	var info report.CorpusInfo
	if n, err := repo.Count(ctx, content.FAQ); err == nil {
		info.FAQs = n
	}
	if n, err := repo.Count(ctx, content.Resource); err == nil {
		info.Resources = n
	}
	return info
}
