// Package metrics scores a ranked list of record IDs against graded
// relevance judgments. Unjudged records count as not relevant.
package metrics

const (
	GradeNotRelevant = 0
	GradeMarginally  = 1
	GradeRelevant    = 2
	GradeHighly      = 3
)

// Judgments maps record ID to relevance grade
type Judgments map[string]int

type ScoreSet struct {
	NDCG      map[int]float64 `json:"ndcg"`
	Precision map[int]float64 `json:"precision"`
	Recall    map[int]float64 `json:"recall"`
	AP        float64         `json:"ap"`
	RR        float64         `json:"rr"`
}

func ComputeAll(ranked []string, judgments Judgments, kValues []int, threshold int) ScoreSet {
	s := ScoreSet{
		NDCG:      make(map[int]float64, len(kValues)),
		Precision: make(map[int]float64, len(kValues)),
		Recall:    make(map[int]float64, len(kValues)),
	}
	for _, k := range kValues {
		s.NDCG[k] = NDCGAtK(ranked, judgments, k)
		s.Precision[k] = PrecisionAtK(ranked, judgments, k, threshold)
		s.Recall[k] = RecallAtK(ranked, judgments, k, threshold)
	}
	s.AP = AveragePrecision(ranked, judgments, threshold)
	s.RR = ReciprocalRank(ranked, judgments, threshold)
	return s
}

func (j Judgments) relevant(id string, threshold int) bool {
	return j[id] >= threshold && j[id] > 0
}

func (j Judgments) countRelevant(threshold int) int {
	n := 0
	for id := range j {
		if j.relevant(id, threshold) {
			n++
		}
	}
	return n
}

func (j Judgments) hitsAtK(ranked []string, k, threshold int) int {
	hits := 0
	for _, id := range ranked[:min(k, len(ranked))] {
		if j.relevant(id, threshold) {
			hits++
		}
	}
	return hits
}
