package search

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var faqAcc, _ = content.AccessorsFor(content.FAQ)
var resourceAcc, _ = content.AccessorsFor(content.Resource)

func resource(id, title string, downloads int64) content.Record {
	return content.Record{
		ID:   id,
		Kind: content.Resource,
		Fields: content.ResourceSchema.Normalize(map[string]content.Value{
			content.FieldTitle: content.Text(title),
		}),
		Metrics: content.Metrics{Downloads: downloads},
	}
}

func faqRecord(id, question, answer string, category content.Value, tags ...string) content.Record {
	fields := map[string]content.Value{
		content.FieldQuestion: content.Text(question),
		content.FieldAnswer:   content.Text(answer),
		content.FieldCategory: category,
	}
	if len(tags) > 0 {
		fields[content.FieldTags] = content.List(tags...)
	}
	return content.Record{
		ID:     id,
		Kind:   content.FAQ,
		Fields: content.FAQSchema.Normalize(fields),
	}
}

func ids(records []content.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestRun_PopularityFirstPage(t *testing.T) {
	corpus := []content.Record{
		resource("a", "Feeding guide", 100),
		resource("b", "Fencing guide", 50),
		resource("c", "Vet checklist", 200),
	}

	res := Run(corpus, Query{SortBy: SortPopularity, Page: 1, PageSize: 2}, resourceAcc)

	assert.Equal(t, []string{"c", "a"}, ids(res.Items))
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, 2, res.TotalPages)
	assert.True(t, res.HasMore)
	assert.Empty(t, res.Suggestions)
	assert.GreaterOrEqual(t, res.SearchTimeMs, 0.0)
}

func TestRun_AscendingFlipsNaturalOrder(t *testing.T) {
	corpus := []content.Record{
		resource("a", "x", 100),
		resource("b", "y", 50),
		resource("c", "z", 200),
	}

	res := Run(corpus, Query{SortBy: SortPopularity, SortOrder: Asc}, resourceAcc)
	assert.Equal(t, []string{"b", "a", "c"}, ids(res.Items))
}

func TestRun_PaginationCoversEveryRecordOnce(t *testing.T) {
	var corpus []content.Record
	for i := 0; i < 23; i++ {
		corpus = append(corpus, resource(fmt.Sprintf("r%02d", i), "Guide", int64(i%4)))
	}

	seen := make(map[string]int)
	var pages int
	for page := 1; ; page++ {
		res := Run(corpus, Query{SortBy: SortPopularity, Page: page, PageSize: 5}, resourceAcc)
		for _, r := range res.Items {
			seen[r.ID]++
		}
		pages++
		if !res.HasMore {
			break
		}
	}

	assert.Equal(t, 5, pages)
	assert.Len(t, seen, 23)
	for id, n := range seen {
		assert.Equal(t, 1, n, "record %s seen more than once", id)
	}
}

func TestRun_OutOfRangePage(t *testing.T) {
	corpus := []content.Record{resource("a", "x", 1), resource("b", "y", 2)}

	res := Run(corpus, Query{Page: 7, PageSize: 10}, resourceAcc)

	assert.Empty(t, res.Items)
	assert.False(t, res.HasMore)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 7, res.CurrentPage)
}

func TestRun_HugePageDoesNotOverflow(t *testing.T) {
	corpus := []content.Record{resource("a", "x", 1), resource("b", "y", 2)}

	for _, page := range []int{math.MaxInt, math.MaxInt / 5, math.MaxInt/10 + 1} {
		var res Result
		require.NotPanics(t, func() {
			res = Run(corpus, Query{Page: page, PageSize: 10}, resourceAcc)
		}, "page %d", page)
		assert.Empty(t, res.Items)
		assert.False(t, res.HasMore)
		assert.Equal(t, 2, res.Total)
	}
}

func TestRun_StableForTies(t *testing.T) {
	corpus := []content.Record{
		resource("first", "x", 10),
		resource("second", "y", 10),
		resource("third", "z", 10),
	}

	desc := Run(corpus, Query{SortBy: SortPopularity}, resourceAcc)
	assert.Equal(t, []string{"first", "second", "third"}, ids(desc.Items))

	asc := Run(corpus, Query{SortBy: SortPopularity, SortOrder: Asc}, resourceAcc)
	assert.Equal(t, []string{"first", "second", "third"}, ids(asc.Items))
}

func TestRun_SortIsMonotonic(t *testing.T) {
	corpus := []content.Record{
		resource("a", "x", 7), resource("b", "x", 3), resource("c", "x", 9),
		resource("d", "x", 1), resource("e", "x", 7), resource("f", "x", 4),
	}

	res := Run(corpus, Query{SortBy: SortPopularity, PageSize: 100}, resourceAcc)
	for i := 1; i < len(res.Items); i++ {
		assert.GreaterOrEqual(t, res.Items[i-1].Metrics.Downloads, res.Items[i].Metrics.Downloads)
	}
}

func TestRun_Alphabetical(t *testing.T) {
	corpus := []content.Record{
		resource("1", "volunteer days", 0),
		resource("2", "Adoption basics", 0),
		resource("3", "feeding pigs", 0),
	}

	res := Run(corpus, Query{SortBy: SortAlphabetical}, resourceAcc)
	assert.Equal(t, []string{"2", "3", "1"}, ids(res.Items))

	res = Run(corpus, Query{SortBy: SortAlphabetical, SortOrder: Desc}, resourceAcc)
	assert.Equal(t, []string{"1", "3", "2"}, ids(res.Items))
}

func TestRun_DateSortUsesUpdatedAt(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a, b, c := resource("a", "x", 0), resource("b", "x", 0), resource("c", "x", 0)
	a.UpdatedAt, b.UpdatedAt, c.UpdatedAt = base, base.Add(48*time.Hour), base.Add(24*time.Hour)

	res := Run([]content.Record{a, b, c}, Query{SortBy: SortDate}, resourceAcc)
	assert.Equal(t, []string{"b", "c", "a"}, ids(res.Items))
}

func TestRun_RelevanceDefaults(t *testing.T) {
	plain := resource("plain", "x", 0)
	plain.Metrics.Rating = 4.9
	featured := resource("featured", "x", 0)
	featured.Featured = true
	featured.Metrics.Rating = 3.0
	top := resource("top", "x", 0)
	top.Featured = true
	top.Metrics.Rating = 4.0

	res := Run([]content.Record{plain, featured, top}, Query{SortBy: "nonsense"}, resourceAcc)
	assert.Equal(t, []string{"top", "featured", "plain"}, ids(res.Items))
}

func TestRun_TextFilter(t *testing.T) {
	corpus := []content.Record{
		faqRecord("f1", "How do I DONATE?", "Use the form.", content.Null(), "giving"),
		faqRecord("f2", "Can I visit?", "Weekends only.", content.Null(), "visits"),
		faqRecord("f3", "Opening hours", "We are open daily.", content.Null(), "donations"),
	}

	res := Run(corpus, Query{Text: "donat"}, faqAcc)
	assert.ElementsMatch(t, []string{"f1", "f3"}, ids(res.Items))

	res = Run(corpus, Query{Text: "  WEEKENDS "}, faqAcc)
	assert.Equal(t, []string{"f2"}, ids(res.Items))
}

func TestRun_StructuredFiltersCompose(t *testing.T) {
	care := content.Named("care", "Animal Care")
	visits := content.Named("visits", "Visiting")
	corpus := []content.Record{
		faqRecord("f1", "Q1", "A", care, "pigs", "food"),
		faqRecord("f2", "Q2", "A", care, "goats"),
		faqRecord("f3", "Q3", "A", visits, "pigs"),
		faqRecord("f4", "Q4", "A", content.Text("care"), "hay"),
	}

	res := Run(corpus, Query{CategoryID: "care"}, faqAcc)
	assert.Equal(t, []string{"f1", "f2", "f4"}, ids(res.Items))

	res = Run(corpus, Query{TagIDs: []string{"goats", "pigs"}}, faqAcc)
	assert.Equal(t, []string{"f1", "f2", "f3"}, ids(res.Items))

	res = Run(corpus, Query{CategoryID: "care", TagIDs: []string{"pigs"}}, faqAcc)
	assert.Equal(t, []string{"f1"}, ids(res.Items))
}

func TestRun_AudienceAndTypeFilters(t *testing.T) {
	guide := resource("g", "Guide", 0)
	guide.Fields[content.FieldType] = content.Text("guide")
	guide.Fields[content.FieldTargetAudience] = content.List("volunteers", "adopters")
	video := resource("v", "Video", 0)
	video.Fields[content.FieldType] = content.Text("video")
	video.Fields[content.FieldTargetAudience] = content.List("visitors")

	res := Run([]content.Record{guide, video}, Query{Audience: "adopters"}, resourceAcc)
	assert.Equal(t, []string{"g"}, ids(res.Items))

	res = Run([]content.Record{guide, video}, Query{Type: "video"}, resourceAcc)
	assert.Equal(t, []string{"v"}, ids(res.Items))

	res = Run([]content.Record{guide, video}, Query{Type: "video", Audience: "adopters"}, resourceAcc)
	assert.Empty(t, res.Items)
}

func TestRun_SuggestionsOnlyWhenTextFindsNothing(t *testing.T) {
	f := faqRecord("f1", "How do I help?", "Volunteer.", content.Named("support", "Support"), "donations", "volunteering")
	f.Fields[content.FieldKeywords] = content.List("sponsor a pig")

	res := Run([]content.Record{f}, Query{Text: "donatx"}, faqAcc)
	assert.Empty(t, res.Items)
	assert.Empty(t, res.Suggestions)

	res = Run([]content.Record{f}, Query{Text: "sponsorship", CategoryID: "nothing"}, faqAcc)
	assert.Empty(t, res.Items)
	assert.Equal(t, []string{"sponsor a pig"}, res.Suggestions)

	res = Run([]content.Record{f}, Query{Text: "help", CategoryID: "nothing"}, faqAcc)
	assert.Empty(t, res.Items)
	assert.Empty(t, res.Suggestions, "structured filters emptying the result do not trigger suggestions")
}

func TestRun_DoesNotMutateCorpus(t *testing.T) {
	corpus := []content.Record{resource("a", "x", 1), resource("b", "y", 5)}

	Run(corpus, Query{SortBy: SortPopularity}, resourceAcc)

	assert.Equal(t, []string{"a", "b"}, ids(corpus))
}

func TestSuggest(t *testing.T) {
	vocabulary := []string{"Donations", "volunteering", "adopt pigs", "donation matching", "sponsor", "tours", "events", "donate online", "donor wall"}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "prefix", text: "donat", want: []string{"Donations", "donation matching", "donate online"}},
		{name: "query contains first word", text: "how to adopt a goat", want: []string{"adopt pigs"}},
		{name: "capped at five", text: "o", want: []string{"Donations", "volunteering", "adopt pigs", "donation matching", "sponsor"}},
		{name: "no match", text: "zebra", want: []string{}},
		{name: "blank", text: "  ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.text, vocabulary))
		})
	}
}

func TestVocabulary(t *testing.T) {
	a := faqRecord("f1", "Q", "A", content.Named("care", "Animal Care"), "pigs", "Food")
	a.Fields[content.FieldKeywords] = content.List("feeding", "pigs")
	b := faqRecord("f2", "Q", "A", content.Named("care", "animal care"), "food", "visits")

	assert.Equal(t, []string{"feeding", "pigs", "Food", "Animal Care", "visits"}, Vocabulary([]content.Record{a, b}, faqAcc))
}

func TestQuery_Normalized(t *testing.T) {
	q := Query{Text: "  pigs ", SortBy: "RATING", Page: 0, PageSize: 500}.Normalized(10)
	require.Equal(t, "pigs", q.Text)
	assert.Equal(t, SortRating, q.SortBy)
	assert.Equal(t, Desc, q.SortOrder)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 100, q.PageSize)

	q = Query{SortBy: SortAlphabetical, PageSize: -3}.Normalized(10)
	assert.Equal(t, Asc, q.SortOrder)
	assert.Equal(t, 10, q.PageSize)
}
