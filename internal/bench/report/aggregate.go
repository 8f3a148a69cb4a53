package report

import (
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/bench/runner"
)

func Generate(br *runner.BenchmarkResult, meta BenchMeta) *Report {
	r := &Report{
		Meta: meta,
		Config: ReportConfig{
			KValues:            br.Config.KValues,
			RelevanceThreshold: br.Config.RelevanceThreshold,
			Runs:               br.Config.Runs,
		},
	}
	if r.Meta.Suite == "" {
		r.Meta.Suite = br.SuiteName
	}
	if r.Meta.Timestamp.IsZero() {
		r.Meta.Timestamp = time.Now().UTC()
	}

	for _, qr := range br.Results {
		e := Entry{
			QueryID:   qr.QueryID,
			Kind:      string(qr.Kind),
			Judged:    qr.Judged,
			Precision: qr.Scores.Precision,
			NDCG:      qr.Scores.NDCG,
			AP:        qr.Scores.AP,
			RR:        qr.Scores.RR,
			Hits:      qr.Total,
			TopIDs:    qr.RankedIDs,
			Latency:   fromRunnerLatencyStats(qr.Latency),
		}
		if qr.Error != nil {
			e.Error = qr.Error.Error()
		}
		r.PerQuery = append(r.PerQuery, e)
	}

	r.Summary = summarize(br)
	return r
}

func summarize(br *runner.BenchmarkResult) Summary {
	s := Summary{
		Precision:  make(map[int]float64, len(br.Config.KValues)),
		NDCG:       make(map[int]float64, len(br.Config.KValues)),
		QueryCount: len(br.Results),
	}

	latencies := make([]runner.LatencyStats, 0, len(br.Results))
	for _, qr := range br.Results {
		if qr.Error != nil {
			s.ErrorCount++
			continue
		}
		latencies = append(latencies, qr.Latency)
		if !qr.Judged {
			continue
		}
		s.JudgedCount++
		s.MAP += qr.Scores.AP
		s.MRR += qr.Scores.RR
		for _, k := range br.Config.KValues {
			s.Precision[k] += qr.Scores.Precision[k]
			s.NDCG[k] += qr.Scores.NDCG[k]
		}
	}

	if s.JudgedCount > 0 {
		n := float64(s.JudgedCount)
		s.MAP /= n
		s.MRR /= n
		for _, k := range br.Config.KValues {
			s.Precision[k] /= n
			s.NDCG[k] /= n
		}
	}
	s.Latency = fromRunnerLatencyStats(runner.AggregateLatencyStats(latencies))
	return s
}

func fromRunnerLatencyStats(s runner.LatencyStats) LatencyStats {
	return LatencyStats{
		Min:         s.Min,
		Max:         s.Max,
		Mean:        s.Mean,
		Median:      s.Median,
		Stddev:      s.Stddev,
		Percentiles: s.Percentiles,
		SampleCount: s.SampleCount,
	}
}
