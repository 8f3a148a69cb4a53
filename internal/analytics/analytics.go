// Package analytics aggregates engagement metrics for the admin
// dashboard. Every function is read-only over the records it is given.
package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/pkg/utils"
)

const uncategorized = "uncategorized"

type CategoryStats struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Records      int    `json:"records"`
	Views        int64  `json:"views"`
	// Engagement is helpful votes for FAQs and downloads for resources
	Engagement int64 `json:"engagement"`
}

// CategoryPopularity groups records by category, most viewed first.
// Categories with equal views keep first-seen order.
func CategoryPopularity(records []content.Record, acc content.Accessors) []CategoryStats {
	index := make(map[string]int)
	stats := make([]CategoryStats, 0)

	for _, r := range records {
		category := r.Field(acc.CategoryField)
		id, name := category.ID(), category.Text()
		if category.IsNull() || id == "" {
			id, name = uncategorized, uncategorized
		}

		i, ok := index[id]
		if !ok {
			i = len(stats)
			index[id] = i
			stats = append(stats, CategoryStats{CategoryID: id, CategoryName: name})
		}

		stats[i].Records++
		stats[i].Views += r.Metrics.Views
		if acc.Kind == content.FAQ {
			stats[i].Engagement += r.Metrics.Helpful
		} else {
			stats[i].Engagement += r.Metrics.Downloads
		}
	}

	slices.SortStableFunc(stats, func(a, b CategoryStats) int {
		return cmp.Compare(b.Views, a.Views)
	})
	return stats
}

type TrendingItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Views       int64   `json:"views"`
	ViewsPerDay float64 `json:"viewsPerDay"`
}

// Trending ranks records by views per day since creation. Records younger
// than a day count as one day old.
func Trending(records []content.Record, acc content.Accessors, now time.Time, limit int) []TrendingItem {
	items := make([]TrendingItem, 0, len(records))
	for _, r := range records {
		days := max(now.Sub(r.CreatedAt).Hours()/24, 1)
		items = append(items, TrendingItem{
			ID:          r.ID,
			Title:       acc.Title(r),
			Views:       r.Metrics.Views,
			ViewsPerDay: utils.RoundDecimal(float64(r.Metrics.Views)/days, 3),
		})
	}

	slices.SortStableFunc(items, func(a, b TrendingItem) int {
		return cmp.Compare(b.ViewsPerDay, a.ViewsPerDay)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

type FeedbackItem struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Helpful          int64   `json:"helpful"`
	NotHelpful       int64   `json:"notHelpful"`
	HelpfulnessRatio float64 `json:"helpfulnessRatio"`
}

type FeedbackReport struct {
	TotalHelpful    int64          `json:"totalHelpful"`
	TotalNotHelpful int64          `json:"totalNotHelpful"`
	OverallRatio    float64        `json:"overallRatio"`
	LeastHelpful    []FeedbackItem `json:"leastHelpful"`
}

// FeedbackOverview totals FAQ votes and lists up to limit records with
// feedback, least helpful first.
func FeedbackOverview(records []content.Record, acc content.Accessors, limit int) FeedbackReport {
	report := FeedbackReport{LeastHelpful: make([]FeedbackItem, 0)}

	for _, r := range records {
		report.TotalHelpful += r.Metrics.Helpful
		report.TotalNotHelpful += r.Metrics.NotHelpful
		if r.Metrics.Helpful+r.Metrics.NotHelpful == 0 {
			continue
		}
		report.LeastHelpful = append(report.LeastHelpful, FeedbackItem{
			ID:               r.ID,
			Title:            acc.Title(r),
			Helpful:          r.Metrics.Helpful,
			NotHelpful:       r.Metrics.NotHelpful,
			HelpfulnessRatio: r.Metrics.HelpfulnessRatio,
		})
	}

	if total := report.TotalHelpful + report.TotalNotHelpful; total > 0 {
		report.OverallRatio = utils.RoundDecimal(float64(report.TotalHelpful)/float64(total), 3)
	}

	slices.SortStableFunc(report.LeastHelpful, func(a, b FeedbackItem) int {
		return cmp.Compare(a.HelpfulnessRatio, b.HelpfulnessRatio)
	})
	if limit > 0 && len(report.LeastHelpful) > limit {
		report.LeastHelpful = report.LeastHelpful[:limit]
	}
	return report
}
