package metrics

// PrecisionAtK is the share of the top k slots holding a relevant record.
// Missing slots count against the score.
func PrecisionAtK(ranked []string, judgments Judgments, k, threshold int) float64 {
	if k <= 0 || len(ranked) == 0 {
		return 0
	}
	return float64(judgments.hitsAtK(ranked, k, threshold)) / float64(k)
}

// RecallAtK is the share of all relevant records found in the top k.
func RecallAtK(ranked []string, judgments Judgments, k, threshold int) float64 {
	if k <= 0 || len(ranked) == 0 {
		return 0
	}
	total := judgments.countRelevant(threshold)
	if total == 0 {
		return 0
	}
	return float64(judgments.hitsAtK(ranked, k, threshold)) / float64(total)
}
