package in_mem

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFAQ(id, question string) content.Record {
	return content.Record{
		ID:   id,
		Kind: content.FAQ,
		Fields: map[string]content.Value{
			content.FieldQuestion: content.Text(question),
		},
	}
}

func TestInMemStorer_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()

	id, err := s.Create(ctx, newFAQ("", "Can I volunteer?"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	rec, err := s.Get(ctx, content.FAQ, id)
	require.NoError(t, err)
	assert.Equal(t, "Can I volunteer?", rec.Field(content.FieldQuestion).Text())
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Len(t, rec.Fields, len(content.FAQSchema.Fields()), "fields are normalized to the schema")

	_, err = s.Get(ctx, content.Resource, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInMemStorer_CreateRejectsDuplicatesAndUnknownKinds(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()

	_, err := s.Create(ctx, newFAQ("f1", "a"))
	require.NoError(t, err)

	_, err = s.Create(ctx, newFAQ("f1", "b"))
	assert.ErrorContains(t, err, "already exists")

	_, err = s.Create(ctx, content.Record{Kind: "animal"})
	assert.ErrorContains(t, err, "unknown content kind")
}

func TestInMemStorer_AllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()

	require.NoError(t, s.CreateBulk(ctx, []content.Record{
		newFAQ("c", "third?"),
		newFAQ("a", "first?"),
		newFAQ("b", "second?"),
	}))

	all, err := s.All(ctx, content.FAQ)
	require.NoError(t, err)

	var ids []string
	for _, r := range all {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)

	count, err := s.Count(ctx, content.FAQ)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	empty, err := s.All(ctx, content.Resource)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestInMemStorer_CreateBulkLeavesNoPartialBatch(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()

	err := s.CreateBulk(ctx, []content.Record{newFAQ("a", "first?"), {ID: "x", Kind: "animal"}})
	assert.ErrorContains(t, err, "unknown content kind")

	err = s.CreateBulk(ctx, []content.Record{newFAQ("a", "first?"), newFAQ("a", "again?")})
	assert.ErrorContains(t, err, "repeated in batch")

	count, err := s.Count(ctx, content.FAQ)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, s.storage, "no collection is created by a rejected batch")
}

func TestInMemStorer_ReadsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()
	_, err := s.Create(ctx, newFAQ("f1", "original"))
	require.NoError(t, err)

	rec, err := s.Get(ctx, content.FAQ, "f1")
	require.NoError(t, err)
	rec.Fields[content.FieldQuestion] = content.Text("mutated")

	again, err := s.Get(ctx, content.FAQ, "f1")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Field(content.FieldQuestion).Text())
}

func TestInMemStorer_Update(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()
	_, err := s.Create(ctx, newFAQ("f1", "q"))
	require.NoError(t, err)

	updated, err := s.Update(ctx, content.FAQ, "f1", func(r *content.Record) error {
		r.Metrics.Views++
		r.ID = "hijacked"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Metrics.Views)
	assert.Equal(t, "f1", updated.ID)

	_, err = s.Update(ctx, content.FAQ, "missing", func(*content.Record) error { return nil })
	assert.ErrorIs(t, err, storage.ErrNotFound)

	boom := errors.New("boom")
	_, err = s.Update(ctx, content.FAQ, "f1", func(r *content.Record) error {
		r.Metrics.Views = 100
		return boom
	})
	assert.ErrorIs(t, err, boom)

	rec, err := s.Get(ctx, content.FAQ, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Metrics.Views, "failed update must not be applied")
}

func TestInMemStorer_ConcurrentUpdatesDoNotLoseIncrements(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()
	_, err := s.Create(ctx, newFAQ("f1", "q"))
	require.NoError(t, err)

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update(ctx, content.FAQ, "f1", func(r *content.Record) error {
				r.Metrics.AddFeedback(true)
				return nil
			})
		}()
	}
	wg.Wait()

	rec, err := s.Get(ctx, content.FAQ, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(workers), rec.Metrics.Helpful)
	assert.Equal(t, 1.0, rec.Metrics.HelpfulnessRatio)
}

func TestInMemStorer_ClearAll(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()
	_, err := s.Create(ctx, newFAQ("f1", "q"))
	require.NoError(t, err)

	require.NoError(t, s.ClearAll(ctx))

	count, err := s.Count(ctx, content.FAQ)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInMemStorer_Contract(t *testing.T) {
	storagetest.RunContract(t, func(t *testing.T) storage.Repository {
		return NewInMemStorer()
	})
}
