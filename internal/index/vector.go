package index

import "math"

// Vector is a sparse term-weight vector. Only terms with non-zero
// weight are present.
type Vector map[string]float64

// BuildVector computes TF-IDF weights for one chunk or query.
//
// tf is the term's relative frequency within the text (count divided
// by totalTerms); idf is the smoothed ln((1+N)/(1+df)) + 1, which
// stays positive even when a term appears in every chunk. Terms the
// corpus has never seen (df = 0) are omitted, which is how unseen
// query terms end up contributing nothing. An empty corpus or empty
// input produces an empty vector.
func BuildVector(freqs map[string]int, totalTerms int, stats *Stats) Vector {
	vec := make(Vector, len(freqs))
	if totalTerms == 0 || stats.CorpusSize() == 0 {
		return vec
	}

	n := float64(stats.CorpusSize())
	for term, count := range freqs {
		df := stats.DocumentFrequency(term)
		if df == 0 {
			continue
		}
		tf := float64(count) / float64(totalTerms)
		idf := math.Log((1+n)/(1+float64(df))) + 1
		vec[term] = tf * idf
	}

	return vec
}

// Dot returns the dot product of two sparse vectors, iterating the
// smaller one.
func (v Vector) Dot(other Vector) float64 {
	a, b := v, other
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for term, weight := range a {
		if ow, ok := b[term]; ok {
			dot += weight * ow
		}
	}
	return dot
}

// Norm returns the Euclidean (L2) norm.
func (v Vector) Norm() float64 {
	var sum float64
	for _, weight := range v {
		sum += weight * weight
	}
	return math.Sqrt(sum)
}

// CosineSimilarity returns the cosine of the angle between a and b.
// When either vector has zero magnitude the similarity is 0 by
// definition, so "no shared vocabulary" ranks last instead of
// dividing by zero. For non-negative vectors the result lies in
// [0, 1] and is symmetric in its arguments.
func CosineSimilarity(a, b Vector) float64 {
	normA := a.Norm()
	normB := b.Norm()
	if normA == 0 || normB == 0 {
		return 0
	}
	return a.Dot(b) / (normA * normB)
}
