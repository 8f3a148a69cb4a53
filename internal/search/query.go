package search

import (
	"strings"

	"github.com/DjordjeVuckovic/sanctuary-hub/pkg/pagination"
)

type SortBy string

const (
	SortRelevance    SortBy = "relevance"
	SortPopularity   SortBy = "popularity"
	SortRating       SortBy = "rating"
	SortDate         SortBy = "date"
	SortAlphabetical SortBy = "alphabetical"
)

type SortOrder string

const (
	Desc SortOrder = "desc"
	Asc  SortOrder = "asc"
)

// ParseSortBy falls back to relevance for empty or unknown values
func ParseSortBy(s string) SortBy {
	switch by := SortBy(strings.ToLower(strings.TrimSpace(s))); by {
	case SortRelevance, SortPopularity, SortRating, SortDate, SortAlphabetical:
		return by
	default:
		return SortRelevance
	}
}

// naturalOrder is the "most relevant first" direction of a strategy
func naturalOrder(by SortBy) SortOrder {
	if by == SortAlphabetical {
		return Asc
	}
	return Desc
}

// Query is the full set of filter, sort and pagination parameters of one
// search. Empty filter fields are inactive.
type Query struct {
	Text       string    `json:"text,omitempty"`
	CategoryID string    `json:"categoryId,omitempty"`
	TagIDs     []string  `json:"tagIds,omitempty"`
	Type       string    `json:"type,omitempty"`
	Difficulty string    `json:"difficulty,omitempty"`
	Audience   string    `json:"audience,omitempty"`
	SortBy     SortBy    `json:"sortBy,omitempty"`
	SortOrder  SortOrder `json:"sortOrder,omitempty"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
}

// Normalized fills defaults: relevance sort in its natural direction,
// page 1 and defaultPageSize items per page
func (q Query) Normalized(defaultPageSize int) Query {
	q.Text = strings.TrimSpace(q.Text)
	q.SortBy = ParseSortBy(string(q.SortBy))

	switch SortOrder(strings.ToLower(string(q.SortOrder))) {
	case Asc:
		q.SortOrder = Asc
	case Desc:
		q.SortOrder = Desc
	default:
		q.SortOrder = naturalOrder(q.SortBy)
	}

	req := pagination.OffsetRequest{Page: q.Page, Size: q.PageSize}
	req.Normalize(defaultPageSize)
	q.Page, q.PageSize = req.Page, req.Size

	return q
}

func (q Query) pageRequest() pagination.OffsetRequest {
	return pagination.OffsetRequest{Page: q.Page, Size: q.PageSize}
}
