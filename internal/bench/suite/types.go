package suite

import (
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/search"
)

type TestSuite struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Version     string  `yaml:"version"`
	Queries     []Query `yaml:"queries"`
}

// Query is one search with the records a good ranking should surface.
type Query struct {
	ID          string              `yaml:"id"`
	Description string              `yaml:"description"`
	Kind        content.Kind        `yaml:"kind"`
	Text        string              `yaml:"text,omitempty"`
	CategoryID  string              `yaml:"category,omitempty"`
	Type        string              `yaml:"type,omitempty"`
	Audience    string              `yaml:"audience,omitempty"`
	SortBy      string              `yaml:"sort_by,omitempty"`
	SortOrder   string              `yaml:"sort_order,omitempty"`
	Judgments   []RelevanceJudgment `yaml:"judgments"`
}

type RelevanceJudgment struct {
	RecordID  string `yaml:"record_id"`
	Relevance int    `yaml:"relevance"`
}

// SearchQuery returns the first page of size maxK for q
func (q *Query) SearchQuery(maxK int) search.Query {
	sq := search.Query{
		Text:       q.Text,
		CategoryID: q.CategoryID,
		Type:       q.Type,
		Audience:   q.Audience,
		SortBy:     search.ParseSortBy(q.SortBy),
		Page:       1,
		PageSize:   maxK,
	}
	if q.SortOrder != "" {
		sq.SortOrder = search.SortOrder(q.SortOrder)
	}
	return sq
}

// JudgmentMap converts the judgments slice to a map keyed by record ID.
func (q *Query) JudgmentMap() map[string]int {
	m := make(map[string]int, len(q.Judgments))
	for _, j := range q.Judgments {
		m[j.RecordID] = j.Relevance
	}
	return m
}
