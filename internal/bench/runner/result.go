package runner

import (
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/bench/metrics"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
)

type QueryResult struct {
	QueryID     string
	Kind        content.Kind
	Scores      metrics.ScoreSet
	Judged      bool
	RankedIDs   []string
	Total       int
	Suggestions []string
	Latency     LatencyStats
	Error       error
}

type BenchmarkResult struct {
	SuiteName string
	Results   []QueryResult
	Config    Config
}

// Failed counts queries whose every run errored
func (br *BenchmarkResult) Failed() int {
	n := 0
	for _, r := range br.Results {
		if r.Error != nil {
			n++
		}
	}
	return n
}
