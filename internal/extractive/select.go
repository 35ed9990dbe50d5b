package extractive

import (
	"cmp"
	"slices"
)

// SentenceCount is max(1, floor(total*percentage/100)), capped at total.
// It returns 0 only when total is 0.
func SentenceCount(total, percentage int) int {
	if total <= 0 {
		return 0
	}
	k := max(1, total*percentage/100)
	return min(k, total)
}

// TopIndices picks the k highest scores, lower index first on ties, and
// returns their indices in ascending (document) order.
func TopIndices(scores []float64, k int) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(scores[b], scores[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	k = min(max(k, 0), len(order))
	picked := slices.Clone(order[:k])
	slices.Sort(picked)
	return picked
}

// Select returns the chosen original sentences in document order.
func Select(sentences []string, scores []float64, percentage int) []string {
	k := SentenceCount(len(sentences), percentage)
	picked := TopIndices(scores, k)

	out := make([]string, 0, len(picked))
	for _, i := range picked {
		out = append(out, sentences[i])
	}
	return out
}
