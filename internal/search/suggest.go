package search

import (
	"strings"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
)

const maxSuggestions = 5

// Suggest returns up to five vocabulary terms, in vocabulary order, where
// the term contains text or text contains the term's first word.
func Suggest(text string, vocabulary []string) []string {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}

	out := make([]string, 0, maxSuggestions)
	for _, term := range vocabulary {
		lower := strings.ToLower(term)
		words := strings.Fields(lower)
		if len(words) == 0 {
			continue
		}
		if strings.Contains(lower, needle) || strings.Contains(needle, words[0]) {
			out = append(out, term)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// Vocabulary collects keywords, tags and category names of the corpus,
// de-duplicated case-insensitively in first-seen order
func Vocabulary(corpus []content.Record, acc content.Accessors) []string {
	seen := make(map[string]struct{})
	var terms []string
	add := func(term string) {
		key := strings.ToLower(strings.TrimSpace(term))
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		terms = append(terms, term)
	}

	for _, r := range corpus {
		for _, kw := range fieldOf(r, acc.KeywordsField).Items() {
			add(kw)
		}
		for _, tag := range fieldOf(r, acc.TagsField).Items() {
			add(tag)
		}
		add(fieldOf(r, acc.CategoryField).Text())
	}
	return terms
}
