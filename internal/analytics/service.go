package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
)

type Service struct {
	repo storage.Repository
	now  func() time.Time
}

func NewService(repo storage.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) load(ctx context.Context, kind content.Kind) ([]content.Record, content.Accessors, error) {
	acc, ok := content.AccessorsFor(kind)
	if !ok {
		return nil, content.Accessors{}, fmt.Errorf("unknown content kind %q", kind)
	}
	records, err := s.repo.All(ctx, kind)
	if err != nil {
		return nil, content.Accessors{}, fmt.Errorf("failed to load %s records: %w", kind, err)
	}
	return records, acc, nil
}

func (s *Service) Categories(ctx context.Context, kind content.Kind) ([]CategoryStats, error) {
	records, acc, err := s.load(ctx, kind)
	if err != nil {
		return nil, err
	}
	return CategoryPopularity(records, acc), nil
}

func (s *Service) Trending(ctx context.Context, kind content.Kind, limit int) ([]TrendingItem, error) {
	records, acc, err := s.load(ctx, kind)
	if err != nil {
		return nil, err
	}
	return Trending(records, acc, s.now(), limit), nil
}

func (s *Service) Feedback(ctx context.Context, limit int) (FeedbackReport, error) {
	records, acc, err := s.load(ctx, content.FAQ)
	if err != nil {
		return FeedbackReport{}, err
	}
	return FeedbackOverview(records, acc, limit), nil
}
