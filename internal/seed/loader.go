// Package seed loads the starter FAQ and resource dataset from YAML.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse seed YAML: %w", err)
	}
	if len(ds.FAQs) == 0 && len(ds.Resources) == 0 {
		return nil, fmt.Errorf("seed dataset is empty")
	}
	return &ds, nil
}

// Records validates every entry against its kind's schema and returns the
// records with all schema keys present. Helpfulness ratios are derived
// from the vote counts.
func (ds *Dataset) Records() ([]content.Record, error) {
	records := make([]content.Record, 0, len(ds.FAQs)+len(ds.Resources))
	for _, group := range []struct {
		kind    content.Kind
		entries []Entry
	}{
		{kind: content.FAQ, entries: ds.FAQs},
		{kind: content.Resource, entries: ds.Resources},
	} {
		schema, _ := content.SchemaFor(group.kind)
		seen := make(map[string]struct{}, len(group.entries))

		for i, e := range group.entries {
			if e.ID == "" {
				return nil, fmt.Errorf("%s at index %d has no id", group.kind, i)
			}
			if _, dup := seen[e.ID]; dup {
				return nil, fmt.Errorf("duplicate %s id %q", group.kind, e.ID)
			}
			seen[e.ID] = struct{}{}

			if err := schema.Validate(e.Fields); err != nil {
				return nil, fmt.Errorf("%s %q: %w", group.kind, e.ID, err)
			}

			metrics := e.Metrics
			metrics.RecalculateRatio()
			updated := e.UpdatedAt
			if updated.IsZero() {
				updated = e.CreatedAt
			}

			records = append(records, content.Record{
				ID:        e.ID,
				Kind:      group.kind,
				Fields:    schema.Normalize(e.Fields),
				Metrics:   metrics,
				Featured:  e.Featured,
				CreatedAt: e.CreatedAt,
				UpdatedAt: updated,
			})
		}
	}
	return records, nil
}

// Apply bulk-loads records into repo unless it already holds content.
// It returns the number of records written.
func Apply(ctx context.Context, repo storage.Repository, records []content.Record) (int, error) {
	for _, kind := range content.Kinds {
		n, err := repo.Count(ctx, kind)
		if err != nil {
			return 0, fmt.Errorf("failed to count %s records: %w", kind, err)
		}
		if n > 0 {
			slog.Info("Repository already has content, skipping seed", "kind", kind, "count", n)
			return 0, nil
		}
	}

	if err := repo.CreateBulk(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to seed records: %w", err)
	}
	slog.Info("Seeded repository", "records", len(records))
	return len(records), nil
}
