package extractive

import (
	"math"
	"slices"
	"strings"
)

// term is one non-zero entry of a sparse weight vector.
type term struct {
	id     int
	weight float64
}

// vector is a sparse TF-IDF row, sorted by term id so every dot product and
// norm sums in the same order on every run.
type vector struct {
	terms []term
	norm  float64
}

// weights builds one TF-IDF vector per clean sentence. TF is the raw count of
// the term in the sentence; IDF is the smoothed ln((1+N)/(1+df)) + 1, which
// stays positive for terms present in every sentence.
func weights(clean []string) []vector {
	n := len(clean)
	counts := make([]map[string]int, n)
	df := make(map[string]int)
	for i, s := range clean {
		tf := make(map[string]int)
		for _, tok := range strings.Fields(s) {
			tf[tok]++
		}
		for tok := range tf {
			df[tok]++
		}
		counts[i] = tf
	}

	vocab := make([]string, 0, len(df))
	for tok := range df {
		vocab = append(vocab, tok)
	}
	slices.Sort(vocab)

	ids := make(map[string]int, len(vocab))
	idf := make([]float64, len(vocab))
	for id, tok := range vocab {
		ids[tok] = id
		idf[id] = math.Log(float64(1+n)/float64(1+df[tok])) + 1
	}

	vectors := make([]vector, n)
	for i, tf := range counts {
		terms := make([]term, 0, len(tf))
		for tok, c := range tf {
			id := ids[tok]
			terms = append(terms, term{id: id, weight: float64(c) * idf[id]})
		}
		slices.SortFunc(terms, func(a, b term) int { return a.id - b.id })

		var sq float64
		for _, t := range terms {
			sq += t.weight * t.weight
		}
		vectors[i] = vector{terms: terms, norm: math.Sqrt(sq)}
	}
	return vectors
}

// cosine is the cosine similarity of two weight vectors, clamped to [0, 1].
// It is 0 when either vector is all zero.
func cosine(a, b vector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}

	var dot float64
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		switch {
		case a.terms[i].id == b.terms[j].id:
			dot += a.terms[i].weight * b.terms[j].weight
			i++
			j++
		case a.terms[i].id < b.terms[j].id:
			i++
		default:
			j++
		}
	}

	return min(max(dot/(a.norm*b.norm), 0), 1)
}

// SimilarityMatrix returns the symmetric pairwise cosine matrix. The diagonal
// is exactly 1 for sentences with at least one term and 0 otherwise.
func SimilarityMatrix(clean []string) [][]float64 {
	vectors := weights(clean)
	n := len(vectors)

	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		if vectors[i].norm > 0 {
			sim[i][i] = 1
		}
		for j := i + 1; j < n; j++ {
			s := cosine(vectors[i], vectors[j])
			sim[i][j] = s
			sim[j][i] = s
		}
	}
	return sim
}

// Score returns, for every sentence, the sum of its similarities to all
// sentences including itself. An empty vocabulary gives all zeros.
func Score(clean []string) []float64 {
	sim := SimilarityMatrix(clean)
	scores := make([]float64, len(sim))
	for i, row := range sim {
		var total float64
		for _, s := range row {
			total += s
		}
		scores[i] = total
	}
	return scores
}
