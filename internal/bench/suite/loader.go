package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*TestSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Queries) == 0 {
		return nil, fmt.Errorf("suite has no queries")
	}

	seen := make(map[string]bool, len(s.Queries))
	for i := range s.Queries {
		q := &s.Queries[i]
		if q.ID == "" {
			return nil, fmt.Errorf("query at index %d has no id", i)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate query id %q", q.ID)
		}
		seen[q.ID] = true

		if q.Kind == "" {
			q.Kind = content.FAQ
		}
		if _, ok := content.SchemaFor(q.Kind); !ok {
			return nil, fmt.Errorf("query %q has unknown kind %q", q.ID, q.Kind)
		}
		for _, j := range q.Judgments {
			if j.RecordID == "" {
				return nil, fmt.Errorf("query %q has a judgment without record_id", q.ID)
			}
			if j.Relevance < 0 {
				return nil, fmt.Errorf("query %q judgment %q has negative relevance", q.ID, j.RecordID)
			}
		}
	}

	return &s, nil
}
