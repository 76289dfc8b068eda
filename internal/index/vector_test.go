package index

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBuildVector tests tf-idf weight computation
func TestBuildVector(t *testing.T) {
	// Single-chunk corpus: idf = ln((1+1)/(1+1)) + 1 = 1, so the
	// weight reduces to the relative term frequency.
	stats := NewStats([]map[string]int{
		{"cat": 2, "mat": 1},
	})

	vec := BuildVector(map[string]int{"cat": 2, "mat": 1}, 3, stats)

	assert.InDelta(t, 2.0/3.0, vec["cat"], 1e-12)
	assert.InDelta(t, 1.0/3.0, vec["mat"], 1e-12)
}

// TestBuildVector_RareTermsWeighHeavier tests idf scaling
func TestBuildVector_RareTermsWeighHeavier(t *testing.T) {
	stats := NewStats([]map[string]int{
		{"the": 1, "cat": 1},
		{"the": 1, "dog": 1},
		{"the": 1, "fox": 1},
	})

	vec := BuildVector(map[string]int{"the": 1, "cat": 1}, 2, stats)

	// "the" appears in every chunk, "cat" in one; equal counts, so
	// the rare term must carry the larger weight.
	assert.Greater(t, vec["cat"], vec["the"])
}

// TestBuildVector_UnknownTermsOmitted tests that terms absent from the
// corpus produce no component
func TestBuildVector_UnknownTermsOmitted(t *testing.T) {
	stats := NewStats([]map[string]int{
		{"cat": 1},
	})

	vec := BuildVector(map[string]int{"zebra": 3, "cat": 1}, 4, stats)

	_, ok := vec["zebra"]
	assert.False(t, ok)
	assert.Contains(t, vec, "cat")
}

// TestBuildVector_EmptyInputs tests degenerate inputs
func TestBuildVector_EmptyInputs(t *testing.T) {
	stats := NewStats([]map[string]int{{"cat": 1}})

	assert.Empty(t, BuildVector(nil, 0, stats))
	assert.Empty(t, BuildVector(map[string]int{"cat": 1}, 3, NewStats(nil)))
}

// TestBuildVector_PositiveWeights tests every stored weight is positive
func TestBuildVector_PositiveWeights(t *testing.T) {
	stats := NewStats([]map[string]int{
		{"a": 1, "b": 1},
		{"a": 1},
		{"a": 1, "c": 2},
	})

	vec := BuildVector(map[string]int{"a": 5, "b": 1, "c": 1}, 7, stats)

	for term, weight := range vec {
		assert.Greater(t, weight, 0.0, "term %q", term)
	}
}

// TestDot tests the sparse dot product
func TestDot(t *testing.T) {
	a := Vector{"x": 2, "y": 3, "z": 1}
	b := Vector{"y": 4, "z": 5, "w": 9}

	assert.InDelta(t, 17.0, a.Dot(b), 1e-12)
	assert.InDelta(t, a.Dot(b), b.Dot(a), 1e-12)
	assert.Zero(t, a.Dot(Vector{}))
	assert.Zero(t, Vector{"p": 1}.Dot(Vector{"q": 1}))
}

// TestNorm tests the Euclidean norm
func TestNorm(t *testing.T) {
	assert.InDelta(t, 5.0, Vector{"x": 3, "y": 4}.Norm(), 1e-12)
	assert.Zero(t, Vector{}.Norm())
}

// TestCosineSimilarity tests similarity bounds and edge cases
func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors score one", func(t *testing.T) {
		v := Vector{"cat": 0.5, "mat": 0.25}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
	})

	t.Run("disjoint vectors score zero", func(t *testing.T) {
		a := Vector{"cat": 1}
		b := Vector{"dog": 1}
		assert.Zero(t, CosineSimilarity(a, b))
	})

	t.Run("zero vector scores zero", func(t *testing.T) {
		a := Vector{"cat": 1}
		assert.Zero(t, CosineSimilarity(a, Vector{}))
		assert.Zero(t, CosineSimilarity(Vector{}, a))
		assert.Zero(t, CosineSimilarity(Vector{}, Vector{}))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Vector{"cat": 0.9, "dog": 0.1, "fox": 0.4}
		b := Vector{"dog": 0.7, "fox": 0.2, "owl": 0.5}
		assert.InDelta(t, CosineSimilarity(a, b), CosineSimilarity(b, a), 1e-12)
	})

	t.Run("bounded", func(t *testing.T) {
		pairs := [][2]Vector{
			{{"a": 1, "b": 2}, {"a": 2, "b": 1}},
			{{"a": 0.001}, {"a": 1000}},
			{{"a": 1, "b": 1, "c": 1}, {"b": 1}},
		}
		for _, p := range pairs {
			got := CosineSimilarity(p[0], p[1])
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0+1e-12)
		}
	})

	t.Run("scale invariant", func(t *testing.T) {
		a := Vector{"a": 1, "b": 2}
		scaled := Vector{"a": 10, "b": 20}
		b := Vector{"a": 3, "b": 1}
		assert.InDelta(t, CosineSimilarity(a, b), CosineSimilarity(scaled, b), 1e-12)
	})
}

// TestCosineSimilarity_NotNaN tests no NaN leaks for any degenerate input
func TestCosineSimilarity_NotNaN(t *testing.T) {
	vectors := []Vector{nil, {}, {"a": 0}, {"a": 1}}
	for _, a := range vectors {
		for _, b := range vectors {
			assert.False(t, math.IsNaN(CosineSimilarity(a, b)))
		}
	}
}
