package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

type cliConfig struct {
	SuitePath string
	SeedPath  string
	KValues   string
	Warmup    int
	Runs      int
	Output    string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "data/bench/sanctuary_search_v1.yaml", "Path to bench suite YAML")
	flag.StringVar(&cfg.SeedPath, "seed", "data/seed.yaml", "Dataset loaded when the configured store is empty")
	flag.StringVar(&cfg.KValues, "k", "1,3,5", "K values for metrics, comma-separated")
	flag.IntVar(&cfg.Warmup, "warmup", 1, "Number of warmup runs before measurement")
	flag.IntVar(&cfg.Runs, "runs", 20, "Number of measured iterations per query")
	flag.StringVar(&cfg.Output, "output", "", "Optional path for a JSON report")

	flag.Parse()
	return cfg
}

func (c cliConfig) parseKValues() ([]int, error) {
	parts := strings.Split(c.KValues, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid k value %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("k value must be positive, got %d", v)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
