package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/analytics"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/apperr"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/diff"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/engagement"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/search"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/versioning"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	e    *echo.Echo
	repo *in_mem.InMemStorer
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctx := context.Background()
	repo := in_mem.NewInMemStorer()
	created := time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.CreateBulk(ctx, []content.Record{
		{ID: "f1", Kind: content.FAQ, CreatedAt: created, Fields: map[string]content.Value{
			content.FieldQuestion: content.Text("How do I donate?"),
			content.FieldCategory: content.Named("donations", "Donations"),
			content.FieldTags:     content.List("donations"),
		}, Metrics: content.Metrics{Views: 10}},
		{ID: "f2", Kind: content.FAQ, CreatedAt: created, Fields: map[string]content.Value{
			content.FieldQuestion: content.Text("When can I visit?"),
			content.FieldCategory: content.Named("visits", "Visiting"),
		}, Metrics: content.Metrics{Views: 50}},
		{ID: "r1", Kind: content.Resource, CreatedAt: created, Fields: map[string]content.Value{
			content.FieldTitle: content.Text("Pig Care Basics"),
		}, Metrics: content.Metrics{Downloads: 100}},
		{ID: "r2", Kind: content.Resource, CreatedAt: created, Fields: map[string]content.Value{
			content.FieldTitle: content.Text("Hen Health"),
		}, Metrics: content.Metrics{Downloads: 200}},
	}))

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewContentRouter(e, repo, search.NewService(repo, nil, 10), engagement.NewRecorder(repo, nil)).Bind()
	NewVersionRouter(e, versioning.NewService(repo, versioning.NewHistory(), diff.Options{}, nil)).Bind()
	NewAnalyticsRouter(e, analytics.NewService(repo)).Bind()

	return &testAPI{e: e, repo: repo}
}

func (a *testAPI) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestSearchHandler(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/resources/search?sortBy=popularity&pageSize=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[search.Result](t, rec)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "r2", res.Items[0].ID)
	assert.Equal(t, 2, res.Total)
	assert.True(t, res.HasMore)

	rec = api.do(t, http.MethodGet, "/api/v1/faqs/search?q=donat&tags=donations,visits", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[search.Result](t, rec)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "f1", res.Items[0].ID)

	rec = api.do(t, http.MethodGet, "/api/v1/faqs/search?q=sponsor", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[search.Result](t, rec)
	assert.Empty(t, res.Items)

	rec = api.do(t, http.MethodGet, "/api/v1/faqs/search?page=two", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHandler(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/faqs/f1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[content.Record](t, rec)
	assert.Equal(t, "How do I donate?", got.Field(content.FieldQuestion).Text())
	assert.Equal(t, "donations", got.Field(content.FieldCategory).ID())

	rec = api.do(t, http.MethodGet, "/api/v1/resources/f1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEngagementHandlers(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodPost, "/api/v1/faqs/f1/feedback", `{"helpful":true}`).Code)
	assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodPost, "/api/v1/faqs/f1/feedback", `{"helpful":false}`).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodPost, "/api/v1/faqs/f1/feedback", `{}`).Code)
	assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodPost, "/api/v1/faqs/missing/feedback", `{"helpful":true}`).Code)
	assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodPost, "/api/v1/resources/r1/download", "").Code)
	assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodPost, "/api/v1/resources/r1/view", "").Code)
	assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodPost, "/api/v1/resources/r1/rating", `{"rating":4}`).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodPost, "/api/v1/resources/r1/rating", `{"rating":9}`).Code)

	faq, err := api.repo.Get(ctx, content.FAQ, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), faq.Metrics.Helpful)
	assert.Equal(t, int64(1), faq.Metrics.NotHelpful)
	assert.Equal(t, 0.5, faq.Metrics.HelpfulnessRatio)

	res, err := api.repo.Get(ctx, content.Resource, "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(101), res.Metrics.Downloads)
	assert.Equal(t, int64(1), res.Metrics.Views)
	assert.Equal(t, 4.0, res.Metrics.Rating)
}

func TestVersionHandlers(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPut, "/api/v1/faqs/f1", `{"fields":{"question":"How can I donate?"},"author":"kim"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	commit := decode[versioning.Commit](t, rec)
	assert.Equal(t, 2, commit.Version.Number)
	require.Len(t, commit.Diff.Changes, 1)
	assert.Equal(t, diff.Modified, commit.Diff.Changes[0].ChangeType)
	assert.Equal(t, diff.High, commit.Diff.Changes[0].Importance)

	rec = api.do(t, http.MethodGet, "/api/v1/faqs/f1/versions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]versioning.Version](t, rec), 2)

	rec = api.do(t, http.MethodGet, "/api/v1/faqs/f1/versions/compare?from=1&to=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cmp := decode[versioning.Comparison](t, rec)
	assert.Equal(t, 1, cmp.Diff.Summary.MajorChanges)

	rec = api.do(t, http.MethodPost, "/api/v1/faqs/f1/versions/1/restore?author=kim", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, decode[versioning.Commit](t, rec).Version.Number)

	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodPost, "/api/v1/faqs/f1/versions/9/restore", "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/faqs/f1/versions/compare?from=1", "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodPut, "/api/v1/faqs/f1", `{"fields":{"colour":"red"}}`).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodPut, "/api/v1/faqs/nope", `{"fields":{"answer":"x"}}`).Code)
}

func TestDiffHandler(t *testing.T) {
	api := newTestAPI(t)

	body := `{
		"previous": {"id": "f1", "kind": "faq", "fields": {"question": "Old Q?", "tags": ["a"]}},
		"current":  {"id": "f1", "kind": "faq", "fields": {"question": "New Q?", "tags": ["a"], "keywords": ["k"]}}
	}`
	rec := api.do(t, http.MethodPost, "/api/v1/diff", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	tracked := decode[versioning.Tracked](t, rec)
	assert.Equal(t, diff.Summary{Total: 2, Added: 1, Modified: 1, MajorChanges: 1}, tracked.Summary)
	assert.Equal(t, "question", tracked.Changes[0].Field)
	assert.Equal(t, "Old Q?", tracked.Changes[0].OldDisplay)

	rec = api.do(t, http.MethodPost, "/api/v1/diff", `{"current": {"kind": "animal"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsHandlers(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/analytics/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cats := decode[[]analytics.CategoryStats](t, rec)
	require.Len(t, cats, 2)
	assert.Equal(t, "visits", cats[0].CategoryID)

	rec = api.do(t, http.MethodGet, "/api/v1/analytics/trending?kind=faqs&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	trending := decode[[]analytics.TrendingItem](t, rec)
	require.Len(t, trending, 1)
	assert.Equal(t, "f2", trending[0].ID)

	rec = api.do(t, http.MethodGet, "/api/v1/analytics/feedback", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/analytics/trending?kind=goats", "").Code)
}
