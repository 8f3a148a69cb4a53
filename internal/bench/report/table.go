package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Search Benchmark: %s ===\n", r.Meta.Suite)
	fmt.Fprintf(tw, "storage=%s faqs=%d resources=%d runs=%d\n\n",
		r.Meta.Storage, r.Meta.Corpus.FAQs, r.Meta.Corpus.Resources, r.Config.Runs)

	writeSummary(tw, r)
	writePerQuery(tw, r)

	return tw.Flush()
}

func writeSummary(tw *tabwriter.Writer, r *Report) {
	s := r.Summary
	fmt.Fprintf(tw, "Summary (%d queries, %d judged, %d failed)\n\n", s.QueryCount, s.JudgedCount, s.ErrorCount)

	header := []string{}
	for _, k := range r.Config.KValues {
		header = append(header, fmt.Sprintf("P@%d", k))
	}
	for _, k := range r.Config.KValues {
		header = append(header, fmt.Sprintf("NDCG@%d", k))
	}
	header = append(header, "MAP", "MRR", "Min", "p50", "p95", "p99", "Max", "Mean", "Stddev")
	writeRow(tw, header)
	writeSeparator(tw, len(header))

	row := []string{}
	for _, k := range r.Config.KValues {
		row = append(row, fmt.Sprintf("%.4f", s.Precision[k]))
	}
	for _, k := range r.Config.KValues {
		row = append(row, fmt.Sprintf("%.4f", s.NDCG[k]))
	}
	row = append(row,
		fmt.Sprintf("%.4f", s.MAP),
		fmt.Sprintf("%.4f", s.MRR),
		fmtDuration(s.Latency.Min),
		fmtDuration(s.Latency.Median),
		fmtDuration(s.Latency.P95()),
		fmtDuration(s.Latency.P99()),
		fmtDuration(s.Latency.Max),
		fmtDuration(s.Latency.Mean),
		fmtDuration(s.Latency.Stddev),
	)
	writeRow(tw, row)
	fmt.Fprintln(tw)
}

func writePerQuery(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Per-Query Results\n\n")

	k := primaryK(r.Config.KValues)
	header := []string{"Query", "Kind", fmt.Sprintf("P@%d", k), fmt.Sprintf("NDCG@%d", k), "RR", "Hits", "p50", "p95", "Top", "Status"}
	writeRow(tw, header)
	writeSeparator(tw, len(header))

	for _, e := range r.PerQuery {
		status := "OK"
		if e.Error != "" {
			status = "ERR"
		}
		rr := "N/A"
		if e.Judged {
			rr = fmt.Sprintf("%.4f", e.RR)
		}
		writeRow(tw, []string{
			e.QueryID,
			e.Kind,
			fmtScore(e.Judged, e.Precision, k),
			fmtScore(e.Judged, e.NDCG, k),
			rr,
			fmt.Sprintf("%d", e.Hits),
			fmtDuration(e.Latency.Median),
			fmtDuration(e.Latency.P95()),
			strings.Join(e.TopIDs[:min(3, len(e.TopIDs))], ","),
			status,
		})
	}
	fmt.Fprintln(tw)
}

func writeRow(tw *tabwriter.Writer, cols []string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func writeSeparator(tw *tabwriter.Writer, n int) {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(tw, sep)
}

func primaryK(kValues []int) int {
	if len(kValues) > 0 {
		return kValues[len(kValues)-1]
	}
	return 5
}

func fmtScore(judged bool, scores map[int]float64, k int) string {
	if !judged {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", scores[k])
}

func fmtDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
