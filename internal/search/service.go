package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/observe"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/DjordjeVuckovic/sanctuary-hub/pkg/pagination"
)

// Service runs searches against the current contents of a repository.
type Service struct {
	repo            storage.Repository
	observer        observe.Observer
	defaultPageSize int
}

func NewService(repo storage.Repository, observer observe.Observer, defaultPageSize int) *Service {
	if defaultPageSize < 1 {
		defaultPageSize = pagination.PageDefaultSize
	}
	return &Service{
		repo:            repo,
		observer:        observe.OrNop(observer),
		defaultPageSize: defaultPageSize,
	}
}

func (s *Service) Search(ctx context.Context, kind content.Kind, q Query) (Result, error) {
	acc, ok := content.AccessorsFor(kind)
	if !ok {
		return Result{}, fmt.Errorf("unknown content kind %q", kind)
	}

	corpus, err := s.repo.All(ctx, kind)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load %s corpus: %w", kind, err)
	}

	started := time.Now()
	q = q.Normalized(s.defaultPageSize)
	res := run(corpus, q, acc)

	slog.Debug("Search executed", "kind", kind, "text", q.Text, "sortBy", q.SortBy, "total", res.Total)
	s.observer.SearchCompleted(ctx, observe.SearchEvent{
		Kind:        kind,
		Text:        q.Text,
		SortBy:      string(q.SortBy),
		Page:        res.CurrentPage,
		Total:       res.Total,
		Returned:    len(res.Items),
		Suggestions: len(res.Suggestions),
		Started:     started,
		Duration:    time.Since(started),
	})

	return res, nil
}
