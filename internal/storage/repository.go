package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
)

var ErrNotFound = errors.New("record not found")

// UpdateFunc edits a record in place. Returning an error aborts the update.
// Stores with optimistic concurrency may call it more than once.
type UpdateFunc func(rec *content.Record) error

// Repository is the keyed content store behind the admin dashboard.
// Implementations serialize Update per record so that concurrent
// engagement events never lose increments.
type Repository interface {
	// Create stores rec, assigning an ID when empty, and returns the ID
	Create(ctx context.Context, rec content.Record) (string, error)
	// CreateBulk stores many records in one round trip. A failed call
	// stores none of them.
	CreateBulk(ctx context.Context, recs []content.Record) error
	// Get returns ErrNotFound when no record of kind has id
	Get(ctx context.Context, kind content.Kind, id string) (content.Record, error)
	// All returns every record of kind in insertion order
	All(ctx context.Context, kind content.Kind) ([]content.Record, error)
	Count(ctx context.Context, kind content.Kind) (int, error)
	// Update applies fn to the stored record atomically and returns the result
	Update(ctx context.Context, kind content.Kind, id string, fn UpdateFunc) (content.Record, error)
	ClearAll(ctx context.Context) error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
