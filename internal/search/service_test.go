package search

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/observe"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	observe.Nop
	searches []observe.SearchEvent
}

func (r *recordingObserver) SearchCompleted(_ context.Context, e observe.SearchEvent) {
	r.searches = append(r.searches, e)
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()
	repo := in_mem.NewInMemStorer()
	require.NoError(t, repo.CreateBulk(ctx, []content.Record{
		resource("a", "Feeding guide", 100),
		resource("b", "Fencing guide", 50),
		resource("c", "Vet checklist", 200),
	}))

	obs := &recordingObserver{}
	svc := NewService(repo, obs, 2)

	res, err := svc.Search(ctx, content.Resource, Query{Text: "guide", SortBy: SortPopularity})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(res.Items))
	assert.False(t, res.HasMore)

	require.Len(t, obs.searches, 1)
	event := obs.searches[0]
	assert.Equal(t, content.Resource, event.Kind)
	assert.Equal(t, "guide", event.Text)
	assert.Equal(t, "popularity", event.SortBy)
	assert.Equal(t, 2, event.Total)
	assert.Equal(t, 2, event.Returned)

	all, err := repo.All(ctx, content.Resource)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(all), "search never reorders the store")
}

func TestService_SearchUsesDefaultPageSize(t *testing.T) {
	ctx := context.Background()
	repo := in_mem.NewInMemStorer()
	require.NoError(t, repo.CreateBulk(ctx, []content.Record{
		resource("a", "x", 1), resource("b", "x", 2), resource("c", "x", 3),
	}))

	res, err := NewService(repo, nil, 2).Search(ctx, content.Resource, Query{})
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.True(t, res.HasMore)
	assert.Equal(t, 2, res.TotalPages)
}

func TestService_SearchUnknownKind(t *testing.T) {
	_, err := NewService(in_mem.NewInMemStorer(), nil, 0).Search(context.Background(), "animal", Query{})
	assert.ErrorContains(t, err, "unknown content kind")
}
