package search

import (
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
)

// filterText keeps records where any searchable field contains needle,
// case-insensitively. No tokenization and no scoring.
func filterText(records []content.Record, needle string, acc content.Accessors) []content.Record {
	needle = strings.ToLower(needle)
	out := make([]content.Record, 0, len(records))
	for _, r := range records {
		if matchesText(r, needle, acc) {
			out = append(out, r)
		}
	}
	return out
}

func matchesText(r content.Record, needle string, acc content.Accessors) bool {
	for _, field := range acc.TextFields {
		if strings.Contains(strings.ToLower(r.Field(field).Text()), needle) {
			return true
		}
	}
	for _, field := range []string{acc.KeywordsField, acc.TagsField} {
		if field == "" {
			continue
		}
		for _, item := range r.Field(field).Items() {
			if strings.Contains(strings.ToLower(item), needle) {
				return true
			}
		}
	}
	return false
}

// filterStructured applies every active structured filter with AND
// semantics. Tags match when the record carries any requested tag.
func filterStructured(records []content.Record, q Query, acc content.Accessors) []content.Record {
	out := make([]content.Record, 0, len(records))
	for _, r := range records {
		if matchesStructured(r, q, acc) {
			out = append(out, r)
		}
	}
	return out
}

func matchesStructured(r content.Record, q Query, acc content.Accessors) bool {
	if q.CategoryID != "" && fieldOf(r, acc.CategoryField).ID() != q.CategoryID {
		return false
	}
	if len(q.TagIDs) > 0 {
		tags := fieldOf(r, acc.TagsField).Items()
		if !slices.ContainsFunc(q.TagIDs, func(id string) bool { return slices.Contains(tags, id) }) {
			return false
		}
	}
	if q.Type != "" && fieldOf(r, acc.TypeField).Text() != q.Type {
		return false
	}
	if q.Difficulty != "" && fieldOf(r, acc.DifficultyField).Text() != q.Difficulty {
		return false
	}
	if q.Audience != "" && !fieldOf(r, acc.AudienceField).Contains(q.Audience) {
		return false
	}
	return true
}

// fieldOf returns null for concepts the content kind does not have
func fieldOf(r content.Record, field string) content.Value {
	if field == "" {
		return content.Null()
	}
	return r.Field(field)
}
