package search

import (
	"cmp"
	"slices"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type compareFunc func(a, b content.Record) int

// comparator returns the strategy's ordering in its natural direction
func comparator(by SortBy, acc content.Accessors) compareFunc {
	switch by {
	case SortPopularity:
		return func(a, b content.Record) int {
			return cmp.Compare(acc.Popularity(b), acc.Popularity(a))
		}
	case SortRating:
		return func(a, b content.Record) int {
			return cmp.Compare(acc.Rating(b), acc.Rating(a))
		}
	case SortDate:
		return func(a, b content.Record) int {
			return b.UpdatedAt.Compare(a.UpdatedAt)
		}
	case SortAlphabetical:
		coll := collate.New(language.English, collate.IgnoreCase)
		return func(a, b content.Record) int {
			return coll.CompareString(acc.Title(a), acc.Title(b))
		}
	default:
		return compareFunc(acc.Relevance)
	}
}

// sortRecords sorts in place with a stable sort so equal keys keep their
// input order
func sortRecords(records []content.Record, q Query, acc content.Accessors) {
	compare := comparator(q.SortBy, acc)
	if q.SortOrder != naturalOrder(q.SortBy) {
		natural := compare
		compare = func(a, b content.Record) int { return natural(b, a) }
	}
	slices.SortStableFunc(records, compare)
}
