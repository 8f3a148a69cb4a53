// Package engagement records visitor interactions against stored content.
// Events for records that do not exist are dropped silently.
package engagement

import (
	"context"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/apperr"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/observe"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
)

const (
	ActionFeedback = "feedback"
	ActionDownload = "download"
	ActionView     = "view"
	ActionRating   = "rating"
)

const (
	minRating = 1
	maxRating = 5
)

type Recorder struct {
	repo     storage.Repository
	observer observe.Observer
}

func NewRecorder(repo storage.Repository, observer observe.Observer) *Recorder {
	return &Recorder{
		repo:     repo,
		observer: observe.OrNop(observer),
	}
}

// RecordFeedback counts a helpful or not-helpful vote on an FAQ and
// recomputes its helpfulness ratio.
func (r *Recorder) RecordFeedback(ctx context.Context, id string, helpful bool) error {
	return r.record(ctx, content.FAQ, id, ActionFeedback, func(m *content.Metrics) {
		m.AddFeedback(helpful)
	})
}

func (r *Recorder) RecordDownload(ctx context.Context, id string) error {
	return r.record(ctx, content.Resource, id, ActionDownload, func(m *content.Metrics) {
		m.Downloads++
	})
}

func (r *Recorder) RecordView(ctx context.Context, kind content.Kind, id string) error {
	return r.record(ctx, kind, id, ActionView, func(m *content.Metrics) {
		m.Views++
	})
}

// RateResource folds a 1-5 star rating into the resource's running average.
func (r *Recorder) RateResource(ctx context.Context, id string, stars int) error {
	if stars < minRating || stars > maxRating {
		return apperr.NewValidation(fmt.Sprintf("rating must be between %d and %d", minRating, maxRating))
	}
	return r.record(ctx, content.Resource, id, ActionRating, func(m *content.Metrics) {
		m.AddRating(float64(stars))
	})
}

func (r *Recorder) record(ctx context.Context, kind content.Kind, id, action string, apply func(*content.Metrics)) error {
	_, err := r.repo.Update(ctx, kind, id, func(rec *content.Record) error {
		apply(&rec.Metrics)
		return nil
	})

	found := err == nil
	if errors.Is(err, storage.ErrNotFound) {
		err = nil
	}

	r.observer.EngagementRecorded(ctx, observe.EngagementEvent{
		Kind:     kind,
		RecordID: id,
		Action:   action,
		Found:    found,
	})

	if err != nil {
		return fmt.Errorf("failed to record %s for %s %s: %w", action, kind, id, err)
	}
	return nil
}
