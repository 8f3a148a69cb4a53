package versioning

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/diff"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/observe"
)

// TrackedChange is a diff.Change annotated for display in the change
// tracker view.
type TrackedChange struct {
	diff.Change
	Importance diff.Importance `json:"importance"`
	OldDisplay string          `json:"old_display"`
	NewDisplay string          `json:"new_display"`
}

type Tracked struct {
	Changes []TrackedChange `json:"changes"`
	Summary diff.Summary    `json:"summary"`
}

type ChangeTracker struct {
	opts     diff.Options
	observer observe.Observer
}

func NewChangeTracker(opts diff.Options, observer observe.Observer) *ChangeTracker {
	return &ChangeTracker{opts: opts, observer: observe.OrNop(observer)}
}

// Track diffs previous against current using the schema of current's kind.
// A nil previous is handled according to the tracker's diff.Options.
func (t *ChangeTracker) Track(ctx context.Context, previous *content.Record, current content.Record) (Tracked, error) {
	schema, ok := content.SchemaFor(current.Kind)
	if !ok {
		return Tracked{}, fmt.Errorf("unknown content kind %q", current.Kind)
	}
	if previous != nil && previous.Kind != current.Kind {
		return Tracked{}, fmt.Errorf("cannot compare %s with %s", previous.Kind, current.Kind)
	}

	changes := diff.Compute(previous, current, schema, t.opts)
	tracked := Tracked{
		Changes: make([]TrackedChange, 0, len(changes)),
		Summary: diff.Summarize(changes, schema),
	}
	for _, c := range changes {
		tracked.Changes = append(tracked.Changes, TrackedChange{
			Change:     c,
			Importance: diff.ClassifyImportance(c.Field, schema),
			OldDisplay: diff.FormatValue(c.OldValue),
			NewDisplay: diff.FormatValue(c.NewValue),
		})
	}

	t.observer.DiffComputed(ctx, observe.DiffEvent{
		Kind:         current.Kind,
		RecordID:     current.ID,
		Changes:      tracked.Summary.Total,
		MajorChanges: tracked.Summary.MajorChanges,
	})
	return tracked, nil
}
