package observe

import (
	"context"
	"log/slog"
)

// Logger writes events as structured slog records
type Logger struct {
	log *slog.Logger
}

func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{log: l}
}

func (l *Logger) SearchCompleted(ctx context.Context, e SearchEvent) {
	l.log.LogAttrs(ctx, slog.LevelDebug, "Search completed",
		slog.String("kind", string(e.Kind)),
		slog.String("query", e.Text),
		slog.String("sort_by", e.SortBy),
		slog.Int("page", e.Page),
		slog.Int("total", e.Total),
		slog.Int("returned", e.Returned),
		slog.Int("suggestions", e.Suggestions),
		slog.Duration("took", e.Duration),
	)
}

func (l *Logger) DiffComputed(ctx context.Context, e DiffEvent) {
	l.log.LogAttrs(ctx, slog.LevelDebug, "Diff computed",
		slog.String("kind", string(e.Kind)),
		slog.String("id", e.RecordID),
		slog.Int("changes", e.Changes),
		slog.Int("major_changes", e.MajorChanges),
	)
}

func (l *Logger) EngagementRecorded(ctx context.Context, e EngagementEvent) {
	level := slog.LevelInfo
	if !e.Found {
		level = slog.LevelDebug
	}
	l.log.LogAttrs(ctx, level, "Engagement recorded",
		slog.String("kind", string(e.Kind)),
		slog.String("id", e.RecordID),
		slog.String("action", e.Action),
		slog.Bool("found", e.Found),
	)
}
