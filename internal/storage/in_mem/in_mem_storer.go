package in_mem

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/google/uuid"
)

type collection struct {
	order   []string
	records map[string]content.Record
}

// InMemStorer keeps records per kind in insertion order, guarded by one
// RWMutex. Reads hand out clones so callers never alias stored maps.
type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[content.Kind]*collection
}

var _ storage.Repository = (*InMemStorer)(nil)

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[content.Kind]*collection),
	}
}

func (s *InMemStorer) Create(ctx context.Context, rec content.Record) (string, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	rec, err := s.insert(rec, time.Now())
	if err != nil {
		return "", err
	}
	slog.Debug("Saved record to in-memory storage", "kind", rec.Kind, "id", rec.ID)
	return rec.ID, nil
}

// CreateBulk is all or nothing: every record is validated against the
// store and the rest of the batch before any of them is committed.
func (s *InMemStorer) CreateBulk(ctx context.Context, recs []content.Record) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	now := time.Now()
	prepared := make([]content.Record, 0, len(recs))
	batch := make(map[content.Kind]map[string]struct{})
	for i, rec := range recs {
		rec, err := s.prepare(rec, now)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		ids, ok := batch[rec.Kind]
		if !ok {
			ids = make(map[string]struct{})
			batch[rec.Kind] = ids
		}
		if _, dup := ids[rec.ID]; dup {
			return fmt.Errorf("record %d: %s %q repeated in batch", i, rec.Kind, rec.ID)
		}
		ids[rec.ID] = struct{}{}
		prepared = append(prepared, rec)
	}

	for _, rec := range prepared {
		s.commit(rec)
	}
	slog.Info("Saved records to in-memory storage", "count", len(recs))
	return nil
}

// insert must be called with the write lock held
func (s *InMemStorer) insert(rec content.Record, now time.Time) (content.Record, error) {
	rec, err := s.prepare(rec, now)
	if err != nil {
		return content.Record{}, err
	}
	s.commit(rec)
	return rec, nil
}

// prepare fills defaults and validates rec without touching the store
func (s *InMemStorer) prepare(rec content.Record, now time.Time) (content.Record, error) {
	schema, ok := content.SchemaFor(rec.Kind)
	if !ok {
		return content.Record{}, fmt.Errorf("unknown content kind %q", rec.Kind)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}
	rec.Fields = schema.Normalize(rec.Fields)

	if c, ok := s.storage[rec.Kind]; ok {
		if _, exists := c.records[rec.ID]; exists {
			return content.Record{}, fmt.Errorf("%s %q already exists", rec.Kind, rec.ID)
		}
	}
	return rec, nil
}

func (s *InMemStorer) commit(rec content.Record) {
	c := s.collection(rec.Kind)
	c.order = append(c.order, rec.ID)
	c.records[rec.ID] = rec
}

func (s *InMemStorer) collection(kind content.Kind) *collection {
	c, ok := s.storage[kind]
	if !ok {
		c = &collection{records: make(map[string]content.Record)}
		s.storage[kind] = c
	}
	return c
}

func (s *InMemStorer) Get(ctx context.Context, kind content.Kind, id string) (content.Record, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	c, ok := s.storage[kind]
	if !ok {
		return content.Record{}, storage.ErrNotFound
	}
	rec, ok := c.records[id]
	if !ok {
		return content.Record{}, storage.ErrNotFound
	}
	return rec.Clone(), nil
}

func (s *InMemStorer) All(ctx context.Context, kind content.Kind) ([]content.Record, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	c, ok := s.storage[kind]
	if !ok {
		return []content.Record{}, nil
	}
	out := make([]content.Record, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.records[id].Clone())
	}
	return out, nil
}

func (s *InMemStorer) Count(ctx context.Context, kind content.Kind) (int, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	if c, ok := s.storage[kind]; ok {
		return len(c.order), nil
	}
	return 0, nil
}

func (s *InMemStorer) Update(ctx context.Context, kind content.Kind, id string, fn storage.UpdateFunc) (content.Record, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	c, ok := s.storage[kind]
	if !ok {
		return content.Record{}, storage.ErrNotFound
	}
	rec, ok := c.records[id]
	if !ok {
		return content.Record{}, storage.ErrNotFound
	}

	rec = rec.Clone()
	if err := fn(&rec); err != nil {
		return content.Record{}, err
	}
	rec.ID, rec.Kind = id, kind
	c.records[id] = rec
	return rec.Clone(), nil
}

func (s *InMemStorer) ClearAll(ctx context.Context) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.storage = make(map[content.Kind]*collection)
	slog.Info("Cleared in-memory storage")
	return nil
}
