package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/DjordjeVuckovic/sanctuary-hub/internal/observe"

// Tracer records each event as an OpenTelemetry span
type Tracer struct {
	tracer trace.Tracer
}

func NewTracer(tp trace.TracerProvider) *Tracer {
	return &Tracer{tracer: tp.Tracer(instrumentationName)}
}

func (t *Tracer) SearchCompleted(ctx context.Context, e SearchEvent) {
	_, span := t.tracer.Start(ctx, "Search.Run", trace.WithTimestamp(e.Started))
	span.SetAttributes(
		attribute.String("content.kind", string(e.Kind)),
		attribute.String("search.query", e.Text),
		attribute.String("search.sort_by", e.SortBy),
		attribute.Int("search.page", e.Page),
		attribute.Int("search.total", e.Total),
		attribute.Int("search.returned", e.Returned),
		attribute.Int("search.suggestions", e.Suggestions),
	)
	span.End(trace.WithTimestamp(e.Started.Add(e.Duration)))
}

func (t *Tracer) DiffComputed(ctx context.Context, e DiffEvent) {
	_, span := t.tracer.Start(ctx, "Diff.Compute")
	span.SetAttributes(
		attribute.String("content.kind", string(e.Kind)),
		attribute.String("content.id", e.RecordID),
		attribute.Int("diff.changes", e.Changes),
		attribute.Int("diff.major_changes", e.MajorChanges),
	)
	span.End()
}

func (t *Tracer) EngagementRecorded(ctx context.Context, e EngagementEvent) {
	_, span := t.tracer.Start(ctx, "Engagement."+e.Action)
	span.SetAttributes(
		attribute.String("content.kind", string(e.Kind)),
		attribute.String("content.id", e.RecordID),
		attribute.Bool("content.found", e.Found),
	)
	span.End()
}
