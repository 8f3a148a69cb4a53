package runner

import (
	"math"
	"slices"
	"time"
)

var reportedPercentiles = []int{50, 75, 90, 95, 99}

// LatencyStats summarizes repeated timings of one search. Percentiles use
// linear interpolation between closest ranks.
type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Median      time.Duration         `json:"median"`
	Stddev      time.Duration         `json:"stddev"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	SampleCount int                   `json:"sample_count"`
	samples     []time.Duration
}

func ComputeLatencyStats(durations []time.Duration) LatencyStats {
	stats := LatencyStats{Percentiles: make(map[int]time.Duration, len(reportedPercentiles))}
	if len(durations) == 0 {
		return stats
	}

	sorted := slices.Clone(durations)
	slices.Sort(sorted)

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	mean := sum / time.Duration(len(sorted))

	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.Mean = mean
	stats.Median = percentile(sorted, 50)
	stats.Stddev = sampleStddev(sorted, mean)
	stats.SampleCount = len(sorted)
	stats.samples = sorted
	for _, p := range reportedPercentiles {
		stats.Percentiles[p] = percentile(sorted, p)
	}
	return stats
}

// sampleStddev uses Bessel's correction; a single sample has no spread
func sampleStddev(sorted []time.Duration, mean time.Duration) time.Duration {
	if len(sorted) < 2 {
		return 0
	}
	var squares float64
	for _, d := range sorted {
		delta := float64(d - mean)
		squares += delta * delta
	}
	return time.Duration(math.Sqrt(squares / float64(len(sorted)-1)))
}

func percentile(sorted []time.Duration, p int) time.Duration {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	rank := float64(p*(len(sorted)-1)) / 100
	lower := int(rank)
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	weight := rank - float64(lower)
	return sorted[lower] + time.Duration(weight*float64(sorted[lower+1]-sorted[lower]))
}

// AggregateLatencyStats pools the samples behind stats and recomputes
func AggregateLatencyStats(stats []LatencyStats) LatencyStats {
	var all []time.Duration
	for _, s := range stats {
		all = append(all, s.samples...)
	}
	return ComputeLatencyStats(all)
}

func (s LatencyStats) P95() time.Duration { return s.Percentiles[95] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }

func (s LatencyStats) IsZero() bool {
	return s.SampleCount == 0
}
