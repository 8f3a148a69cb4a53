// Package storagetest holds the behaviour every storage.Repository
// implementation must share.
package storagetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunContract exercises repo through the Repository interface. newRepo
// must return an empty repository.
func RunContract(t *testing.T, newRepo func(t *testing.T) storage.Repository) {
	t.Run("create get roundtrip", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		id, err := repo.Create(ctx, content.Record{
			Kind:      content.Resource,
			Featured:  true,
			CreatedAt: created,
			Fields: map[string]content.Value{
				content.FieldTitle:          content.Text("Pig Care Basics"),
				content.FieldCategory:       content.Named("care", "Animal Care"),
				content.FieldTargetAudience: content.List("volunteers", "adopters"),
			},
			Metrics: content.Metrics{Downloads: 12, Rating: 4.5, RatingCount: 2},
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		rec, err := repo.Get(ctx, content.Resource, id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.ID)
		assert.Equal(t, content.Resource, rec.Kind)
		assert.True(t, rec.Featured)
		assert.True(t, created.Equal(rec.CreatedAt))
		assert.True(t, content.Text("Pig Care Basics").Equal(rec.Field(content.FieldTitle)))
		assert.True(t, content.Named("care", "Animal Care").Equal(rec.Field(content.FieldCategory)))
		assert.True(t, content.List("volunteers", "adopters").Equal(rec.Field(content.FieldTargetAudience)))
		assert.True(t, rec.Field(content.FieldURL).IsNull())
		assert.Equal(t, int64(12), rec.Metrics.Downloads)
		assert.InDelta(t, 4.5, rec.Metrics.Rating, 1e-9)
	})

	t.Run("get unknown returns ErrNotFound", func(t *testing.T) {
		_, err := newRepo(t).Get(context.Background(), content.FAQ, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("all keeps insertion order per kind", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		require.NoError(t, repo.CreateBulk(ctx, []content.Record{
			faq("f-2", "Second?"),
			faq("f-1", "First?"),
			{ID: "r-1", Kind: content.Resource},
			faq("f-3", "Third?"),
		}))

		all, err := repo.All(ctx, content.FAQ)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "f-2", all[0].ID)
		assert.Equal(t, "f-1", all[1].ID)
		assert.Equal(t, "f-3", all[2].ID)

		count, err := repo.Count(ctx, content.Resource)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("create bulk is all or nothing", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		_, err := repo.Create(ctx, faq("existing", "Q?"))
		require.NoError(t, err)

		batches := map[string][]content.Record{
			"unknown kind":      {faq("f-1", "A?"), {ID: "x-1", Kind: content.Kind("bogus")}},
			"repeated id":       {faq("f-2", "B?"), faq("f-2", "C?")},
			"already stored id": {faq("f-3", "D?"), faq("existing", "E?")},
		}
		for name, batch := range batches {
			assert.Error(t, repo.CreateBulk(ctx, batch), name)
		}

		all, err := repo.All(ctx, content.FAQ)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "existing", all[0].ID)
	})

	t.Run("update is applied and serialized", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		_, err := repo.Create(ctx, faq("f-1", "Q?"))
		require.NoError(t, err)

		const workers = 10
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Update(ctx, content.FAQ, "f-1", func(r *content.Record) error {
					r.Metrics.Views++
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		rec, err := repo.Get(ctx, content.FAQ, "f-1")
		require.NoError(t, err)
		assert.Equal(t, int64(workers), rec.Metrics.Views)

		_, err = repo.Update(ctx, content.FAQ, "missing", func(*content.Record) error { return nil })
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("clear all", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		_, err := repo.Create(ctx, faq("f-1", "Q?"))
		require.NoError(t, err)

		require.NoError(t, repo.ClearAll(ctx))

		count, err := repo.Count(ctx, content.FAQ)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func faq(id, question string) content.Record {
	return content.Record{
		ID:   id,
		Kind: content.FAQ,
		Fields: map[string]content.Value{
			content.FieldQuestion: content.Text(question),
		},
	}
}
