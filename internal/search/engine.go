// Package search filters, ranks and paginates FAQ and resource records.
//
// Run is a pure function of its inputs: it never mutates the corpus and
// keeps no state between calls.
package search

import (
	"slices"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/pkg/pagination"
	"github.com/DjordjeVuckovic/sanctuary-hub/pkg/utils"
)

// Result is one page of a search
type Result struct {
	Items        []content.Record `json:"items"`
	Total        int              `json:"total"`
	CurrentPage  int              `json:"currentPage"`
	TotalPages   int              `json:"totalPages"`
	HasMore      bool             `json:"hasMore"`
	SearchTimeMs float64          `json:"searchTimeMs"`
	Suggestions  []string         `json:"suggestions,omitempty"`
}

// Run executes the search pipeline in its fixed order: text filter,
// structured filters, stable sort, pagination. The query is normalized
// with pagination.PageDefaultSize as default page size.
func Run(corpus []content.Record, q Query, acc content.Accessors) Result {
	return run(corpus, q.Normalized(pagination.PageDefaultSize), acc)
}

func run(corpus []content.Record, q Query, acc content.Accessors) Result {
	started := time.Now()

	candidates := slices.Clone(corpus)
	var suggestions []string

	if q.Text != "" {
		candidates = filterText(candidates, q.Text, acc)
		if len(candidates) == 0 {
			suggestions = Suggest(q.Text, Vocabulary(corpus, acc))
		}
	}

	candidates = filterStructured(candidates, q, acc)
	sortRecords(candidates, q, acc)

	page := pagination.Paginate(candidates, q.pageRequest())

	return Result{
		Items:        page.Items,
		Total:        int(page.Total),
		CurrentPage:  page.Page,
		TotalPages:   page.TotalPages,
		HasMore:      page.HasMore,
		SearchTimeMs: utils.RoundDecimal(float64(time.Since(started).Microseconds())/1000, 3),
		Suggestions:  suggestions,
	}
}
