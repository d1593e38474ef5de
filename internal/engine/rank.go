package engine

import (
	"math"
	"sort"
)

// RankedCandidate pairs an employee index with its similarity score.
type RankedCandidate struct {
	Index int
	Score float64
}

// RankAll scores every indexed employee against the query vector and returns
// them in descending score order. The sort is stable, so ties keep the
// original employee list order. An empty query vector or empty index yields
// an empty ranking.
func RankAll(query []float64, index [][]float64) []RankedCandidate {
	if len(query) == 0 || len(index) == 0 {
		return nil
	}

	ranked := make([]RankedCandidate, len(index))
	for i, vec := range index {
		ranked[i] = RankedCandidate{Index: i, Score: cosineSimilarity(query, vec)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
