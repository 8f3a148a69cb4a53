// Package versioning keeps the edit history of content records and
// reports what changed between versions.
package versioning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/apperr"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/diff"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/observe"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
)

const baselineNote = "baseline"

type Commit struct {
	Version Version `json:"version"`
	Diff    Tracked `json:"diff"`
}

type Comparison struct {
	From int     `json:"from"`
	To   int     `json:"to"`
	Diff Tracked `json:"diff"`
}

// Service applies edits through the repository and records a version for
// each one. Edits are serialized so version numbers follow store order.
type Service struct {
	mu      sync.Mutex
	repo    storage.Repository
	history *History
	tracker *ChangeTracker
	now     func() time.Time
}

func NewService(repo storage.Repository, history *History, opts diff.Options, observer observe.Observer) *Service {
	return &Service{
		repo:    repo,
		history: history,
		tracker: NewChangeTracker(opts, observer),
		now:     time.Now,
	}
}

func (s *Service) Tracker() *ChangeTracker {
	return s.tracker
}

// Commit stores rec as the next version of its record and returns the
// changes against the previous version.
func (s *Service) Commit(ctx context.Context, rec content.Record, author, note string) (Commit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, rec, author, note)
}

func (s *Service) commit(ctx context.Context, rec content.Record, author, note string) (Commit, error) {
	var previous *content.Record
	if latest, ok := s.history.Latest(rec.Kind, rec.ID); ok {
		previous = &latest.Snapshot
	}

	tracked, err := s.tracker.Track(ctx, previous, rec)
	if err != nil {
		return Commit{}, err
	}

	v := s.history.Append(rec, author, note, s.now())
	slog.Info("Version committed",
		"kind", rec.Kind,
		"id", rec.ID,
		"version", v.Number,
		"changes", tracked.Summary.Total,
		"majorChanges", tracked.Summary.MajorChanges)

	return Commit{Version: v, Diff: tracked}, nil
}

// ensureBaseline records the stored state as version 1 before the first
// edit of a record
func (s *Service) ensureBaseline(ctx context.Context, kind content.Kind, id string) error {
	if _, ok := s.history.Latest(kind, id); ok {
		return nil
	}
	current, err := s.repo.Get(ctx, kind, id)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFound(string(kind), id)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s %s: %w", kind, id, err)
	}
	s.history.Append(current, "", baselineNote, current.UpdatedAt)
	return nil
}

// Update applies the given field edits to a stored record. Keys absent
// from fields keep their value; a null value clears the field.
func (s *Service) Update(ctx context.Context, kind content.Kind, id string, fields map[string]content.Value, author, note string) (Commit, error) {
	schema, ok := content.SchemaFor(kind)
	if !ok {
		return Commit{}, apperr.NewValidation(fmt.Sprintf("unknown content kind %q", kind))
	}
	if len(fields) == 0 {
		return Commit{}, apperr.NewValidation("no fields to update")
	}
	if err := schema.Validate(fields); err != nil {
		return Commit{}, apperr.NewValidationWrap("invalid fields", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureBaseline(ctx, kind, id); err != nil {
		return Commit{}, err
	}

	updated, err := s.repo.Update(ctx, kind, id, func(rec *content.Record) error {
		if rec.Fields == nil {
			rec.Fields = make(map[string]content.Value, len(fields))
		}
		maps.Copy(rec.Fields, fields)
		rec.UpdatedAt = s.now()
		return nil
	})
	if errors.Is(err, storage.ErrNotFound) {
		return Commit{}, apperr.NewNotFound(string(kind), id)
	}
	if err != nil {
		return Commit{}, fmt.Errorf("failed to update %s %s: %w", kind, id, err)
	}

	return s.commit(ctx, updated, author, note)
}

// Restore writes the fields of an earlier version back to the store as a
// new version. Engagement metrics are left untouched.
func (s *Service) Restore(ctx context.Context, kind content.Kind, id string, number int, author string) (Commit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.history.Get(kind, id, number)
	if !ok {
		return Commit{}, apperr.NewNotFound(fmt.Sprintf("%s %s version", kind, id), fmt.Sprint(number))
	}

	updated, err := s.repo.Update(ctx, kind, id, func(rec *content.Record) error {
		rec.Fields = maps.Clone(target.Snapshot.Fields)
		rec.Featured = target.Snapshot.Featured
		rec.UpdatedAt = s.now()
		return nil
	})
	if errors.Is(err, storage.ErrNotFound) {
		return Commit{}, apperr.NewNotFound(string(kind), id)
	}
	if err != nil {
		return Commit{}, fmt.Errorf("failed to restore %s %s: %w", kind, id, err)
	}

	return s.commit(ctx, updated, author, fmt.Sprintf("restored version %d", number))
}

func (s *Service) Versions(kind content.Kind, id string) []Version {
	return s.history.List(kind, id)
}

func (s *Service) Compare(ctx context.Context, kind content.Kind, id string, from, to int) (Comparison, error) {
	older, ok := s.history.Get(kind, id, from)
	if !ok {
		return Comparison{}, apperr.NewNotFound(fmt.Sprintf("%s %s version", kind, id), fmt.Sprint(from))
	}
	newer, ok := s.history.Get(kind, id, to)
	if !ok {
		return Comparison{}, apperr.NewNotFound(fmt.Sprintf("%s %s version", kind, id), fmt.Sprint(to))
	}

	tracked, err := s.tracker.Track(ctx, &older.Snapshot, newer.Snapshot)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{From: from, To: to, Diff: tracked}, nil
}
