package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/bench/metrics"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/bench/suite"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/search"
)

// Searcher is satisfied by *search.Service
type Searcher interface {
	Search(ctx context.Context, kind content.Kind, q search.Query) (search.Result, error)
}

type Runner struct {
	config   Config
	searcher Searcher
}

func New(cfg Config, searcher Searcher) *Runner {
	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	if len(cfg.KValues) == 0 {
		cfg.KValues = DefaultKValues
	}
	return &Runner{config: cfg, searcher: searcher}
}

func (r *Runner) Run(ctx context.Context, ts *suite.TestSuite) *BenchmarkResult {
	br := &BenchmarkResult{SuiteName: ts.Name, Config: r.config}

	for i := range ts.Queries {
		if ctx.Err() != nil {
			break
		}
		qr := r.runQuery(ctx, &ts.Queries[i])
		if qr.Error != nil {
			slog.Warn("query failed", "query", qr.QueryID, "error", qr.Error)
		}
		br.Results = append(br.Results, qr)
	}

	return br
}

func (r *Runner) runQuery(ctx context.Context, q *suite.Query) QueryResult {
	sq := q.SearchQuery(r.config.MaxK())
	qr := QueryResult{QueryID: q.ID, Kind: q.Kind}

	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = r.searcher.Search(ctx, q.Kind, sq)
	}

	var (
		latencies []time.Duration
		last      *search.Result
	)
	for i := 0; i < r.config.Runs; i++ {
		started := time.Now()
		res, err := r.searcher.Search(ctx, q.Kind, sq)
		if err != nil {
			qr.Error = err
			continue
		}
		latencies = append(latencies, time.Since(started))
		last = &res
	}
	if last == nil {
		return qr
	}

	qr.Error = nil
	qr.Total = last.Total
	qr.Suggestions = last.Suggestions
	qr.Latency = ComputeLatencyStats(latencies)
	for _, rec := range last.Items {
		qr.RankedIDs = append(qr.RankedIDs, rec.ID)
	}

	if judgments := q.JudgmentMap(); len(judgments) > 0 {
		qr.Judged = true
		qr.Scores = metrics.ComputeAll(qr.RankedIDs, judgments, r.config.KValues, r.config.RelevanceThreshold)
	}
	return qr
}
