package metrics

import (
	"cmp"
	"math"
	"slices"
)

// AveragePrecision averages the precision at each rank holding a relevant record.
func AveragePrecision(ranked []string, judgments Judgments, threshold int) float64 {
	total := judgments.countRelevant(threshold)
	if total == 0 || len(ranked) == 0 {
		return 0
	}

	var sum float64
	seen := 0
	for i, id := range ranked {
		if judgments.relevant(id, threshold) {
			seen++
			sum += float64(seen) / float64(i+1)
		}
	}
	return sum / float64(total)
}

// ReciprocalRank is 1/rank of the first relevant record, 0 when none is ranked.
func ReciprocalRank(ranked []string, judgments Judgments, threshold int) float64 {
	for i, id := range ranked {
		if judgments.relevant(id, threshold) {
			return 1 / float64(i+1)
		}
	}
	return 0
}

// NDCGAtK uses graded gain 2^rel-1 discounted by log2(rank+1).
func NDCGAtK(ranked []string, judgments Judgments, k int) float64 {
	if k <= 0 || len(ranked) == 0 || len(judgments) == 0 {
		return 0
	}

	grades := make([]int, 0, len(ranked))
	for _, id := range ranked[:min(k, len(ranked))] {
		grades = append(grades, judgments[id])
	}

	ideal := make([]int, 0, len(judgments))
	for _, rel := range judgments {
		if rel > 0 {
			ideal = append(ideal, rel)
		}
	}
	slices.SortFunc(ideal, func(a, b int) int { return cmp.Compare(b, a) })

	idcg := dcg(ideal[:min(k, len(ideal))])
	if idcg == 0 {
		return 0
	}
	return dcg(grades) / idcg
}

func dcg(grades []int) float64 {
	var sum float64
	for i, rel := range grades {
		sum += (math.Pow(2, float64(rel)) - 1) / math.Log2(float64(i+2))
	}
	return sum
}
