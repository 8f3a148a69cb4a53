// Package observe carries instrumentation for the search, diff and
// engagement operations. Callers pass an Observer in; the engines never
// log or trace on their own.
package observe

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
)

type SearchEvent struct {
	Kind        content.Kind
	Text        string
	SortBy      string
	Page        int
	Total       int
	Returned    int
	Suggestions int
	Started     time.Time
	Duration    time.Duration
}

type DiffEvent struct {
	Kind         content.Kind
	RecordID     string
	Changes      int
	MajorChanges int
}

type EngagementEvent struct {
	Kind     content.Kind
	RecordID string
	Action   string
	// Found is false when the record did not exist and the event was dropped
	Found bool
}

type Observer interface {
	SearchCompleted(ctx context.Context, e SearchEvent)
	DiffComputed(ctx context.Context, e DiffEvent)
	EngagementRecorded(ctx context.Context, e EngagementEvent)
}

// Nop discards every event
type Nop struct{}

func (Nop) SearchCompleted(context.Context, SearchEvent)        {}
func (Nop) DiffComputed(context.Context, DiffEvent)             {}
func (Nop) EngagementRecorded(context.Context, EngagementEvent) {}

type multi []Observer

// Multi fans every event out to all observers in order
func Multi(observers ...Observer) Observer {
	return multi(observers)
}

func (m multi) SearchCompleted(ctx context.Context, e SearchEvent) {
	for _, o := range m {
		o.SearchCompleted(ctx, e)
	}
}

func (m multi) DiffComputed(ctx context.Context, e DiffEvent) {
	for _, o := range m {
		o.DiffComputed(ctx, e)
	}
}

func (m multi) EngagementRecorded(ctx context.Context, e EngagementEvent) {
	for _, o := range m {
		o.EngagementRecorded(ctx, e)
	}
}

// OrNop returns o, or Nop when o is nil
func OrNop(o Observer) Observer {
	if o == nil {
		return Nop{}
	}
	return o
}
