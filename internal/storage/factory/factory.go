package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/es"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/pg"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type alwaysHealthy struct{}

func (alwaysHealthy) Healthy(context.Context) bool { return true }

// Backend bundles a repository with its health check and teardown.
type Backend struct {
	Repository storage.Repository
	Health     HealthChecker
	Close      func()
}

// NewRepository creates the storage.Repository selected by cfg.Type
func NewRepository(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		repo, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{Repository: repo, Health: pg.NewHealthChecker(pool), Close: pool.Close}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}

		repo, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{Repository: repo, Health: es.NewHealthChecker(repo), Close: func() {}}, nil

	case storage.InMem:
		return &Backend{Repository: in_mem.NewInMemStorer(), Health: alwaysHealthy{}, Close: func() {}}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
