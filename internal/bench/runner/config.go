package runner

var DefaultKValues = []int{1, 3, 5}

const (
	DefaultRelevanceThreshold = 1
	DefaultWarmupRuns         = 1
	DefaultRuns               = 20
)

type Config struct {
	KValues            []int
	RelevanceThreshold int
	WarmupRuns         int
	Runs               int
}

func DefaultConfig() Config {
	return Config{
		KValues:            DefaultKValues,
		RelevanceThreshold: DefaultRelevanceThreshold,
		WarmupRuns:         DefaultWarmupRuns,
		Runs:               DefaultRuns,
	}
}

// MaxK is the page size every benchmark query is run with
func (c Config) MaxK() int {
	k := 1
	for _, v := range c.KValues {
		k = max(k, v)
	}
	return k
}
