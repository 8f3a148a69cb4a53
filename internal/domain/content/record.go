package content

import (
	"fmt"
	"maps"
	"strings"
	"time"
)

// Kind identifies a content type
type Kind string

const (
	FAQ      Kind = "faq"
	Resource Kind = "resource"
)

var Kinds = []Kind{FAQ, Resource}

// ParseKind accepts singular and plural spellings ("faq", "faqs", "resources")
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "faq", "faqs":
		return FAQ, nil
	case "resource", "resources":
		return Resource, nil
	default:
		return "", fmt.Errorf("unknown content kind %q", s)
	}
}

// Metrics are engagement counters. They change only through explicit
// engagement events, never through search or diff.
type Metrics struct {
	Views            int64   `json:"views" yaml:"views"`
	Helpful          int64   `json:"helpful" yaml:"helpful"`
	NotHelpful       int64   `json:"notHelpful" yaml:"notHelpful"`
	HelpfulnessRatio float64 `json:"helpfulnessRatio" yaml:"helpfulnessRatio"`
	Rating           float64 `json:"rating" yaml:"rating"`
	RatingCount      int64   `json:"ratingCount" yaml:"ratingCount"`
	Downloads        int64   `json:"downloads" yaml:"downloads"`
}

// AddFeedback counts one vote and recomputes the helpfulness ratio
func (m *Metrics) AddFeedback(helpful bool) {
	if helpful {
		m.Helpful++
	} else {
		m.NotHelpful++
	}
	m.RecalculateRatio()
}

// RecalculateRatio sets helpful/(helpful+notHelpful), 0 when no votes
func (m *Metrics) RecalculateRatio() {
	total := m.Helpful + m.NotHelpful
	if total == 0 {
		m.HelpfulnessRatio = 0
		return
	}
	m.HelpfulnessRatio = float64(m.Helpful) / float64(total)
}

// AddRating folds score into the running average rating
func (m *Metrics) AddRating(score float64) {
	m.Rating = (m.Rating*float64(m.RatingCount) + score) / float64(m.RatingCount+1)
	m.RatingCount++
}

// Record is a single FAQ or educational resource
type Record struct {
	ID        string           `json:"id"`
	Kind      Kind             `json:"kind"`
	Fields    map[string]Value `json:"fields"`
	Metrics   Metrics          `json:"metrics"`
	Featured  bool             `json:"featured,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Field returns the named value, null when absent
func (r Record) Field(name string) Value {
	return r.Fields[name]
}

// Clone copies the field map so the result can be edited independently
func (r Record) Clone() Record {
	c := r
	c.Fields = maps.Clone(r.Fields)
	return c
}
