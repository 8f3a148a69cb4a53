package report

import (
	"runtime"
	"time"
)

type Report struct {
	Meta     BenchMeta    `json:"meta"`
	Config   ReportConfig `json:"config"`
	Summary  Summary      `json:"summary"`
	PerQuery []Entry      `json:"per_query"`
}

type BenchMeta struct {
	Suite       string          `json:"suite"`
	Timestamp   time.Time       `json:"timestamp"`
	Storage     string          `json:"storage"`
	Corpus      CorpusInfo      `json:"corpus"`
	Environment EnvironmentInfo `json:"environment"`
}

type CorpusInfo struct {
	FAQs      int `json:"faqs"`
	Resources int `json:"resources"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type ReportConfig struct {
	KValues            []int `json:"k_values"`
	RelevanceThreshold int   `json:"relevance_threshold"`
	Runs               int   `json:"runs"`
}

type Entry struct {
	QueryID   string          `json:"query_id"`
	Kind      string          `json:"kind"`
	Judged    bool            `json:"judged"`
	Precision map[int]float64 `json:"precision,omitempty"`
	NDCG      map[int]float64 `json:"ndcg,omitempty"`
	AP        float64         `json:"ap"`
	RR        float64         `json:"rr"`
	Hits      int             `json:"hits"`
	TopIDs    []string        `json:"top_ids"`
	Latency   LatencyStats    `json:"latency"`
	Error     string          `json:"error,omitempty"`
}

// Summary holds quality means over judged queries and latency over all
// successful runs
type Summary struct {
	Precision   map[int]float64 `json:"precision"`
	NDCG        map[int]float64 `json:"ndcg"`
	MAP         float64         `json:"map"`
	MRR         float64         `json:"mrr"`
	Latency     LatencyStats    `json:"latency"`
	QueryCount  int             `json:"query_count"`
	JudgedCount int             `json:"judged_count"`
	ErrorCount  int             `json:"error_count"`
}

type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Median      time.Duration         `json:"median"`
	Stddev      time.Duration         `json:"stddev"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	SampleCount int                   `json:"sample_count"`
}

func (s LatencyStats) P95() time.Duration { return s.Percentiles[95] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }
