package observe

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracer_SearchCompleted(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	tr := NewTracer(tp)

	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tr.SearchCompleted(context.Background(), SearchEvent{
		Kind:     content.Resource,
		Text:     "goats",
		SortBy:   "popularity",
		Page:     1,
		Total:    3,
		Returned: 2,
		Started:  started,
		Duration: 5 * time.Millisecond,
	})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Search.Run", spans[0].Name())
	assert.True(t, started.Equal(spans[0].StartTime()))
	assert.True(t, started.Add(5*time.Millisecond).Equal(spans[0].EndTime()))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("search.total", 3))
	assert.Contains(t, spans[0].Attributes(), attribute.String("content.kind", "resource"))
}

func TestTracer_EngagementRecorded(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	NewTracer(tp).EngagementRecorded(context.Background(), EngagementEvent{
		Kind: content.FAQ, RecordID: "f1", Action: "feedback", Found: true,
	})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Engagement.feedback", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("content.found", true))
}

func TestLogger_WritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewLogger(l).DiffComputed(context.Background(), DiffEvent{
		Kind: content.FAQ, RecordID: "f1", Changes: 2, MajorChanges: 1,
	})

	out := buf.String()
	assert.Contains(t, out, `"msg":"Diff computed"`)
	assert.Contains(t, out, `"major_changes":1`)
}

type countingObserver struct {
	Nop
	searches int
}

func (c *countingObserver) SearchCompleted(context.Context, SearchEvent) { c.searches++ }

func TestMulti_FansOut(t *testing.T) {
	a, b := &countingObserver{}, &countingObserver{}
	Multi(a, b).SearchCompleted(context.Background(), SearchEvent{})

	assert.Equal(t, 1, a.searches)
	assert.Equal(t, 1, b.searches)
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, Nop{}, OrNop(nil))
	c := &countingObserver{}
	assert.Same(t, c, OrNop(c))
}
