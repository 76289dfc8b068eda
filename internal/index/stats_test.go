package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewStats tests document frequency counting
func TestNewStats(t *testing.T) {
	stats := NewStats([]map[string]int{
		{"cat": 2, "mat": 1},
		{"cat": 1, "dog": 3},
		{"dog": 1},
	})

	assert.Equal(t, 3, stats.CorpusSize())
	assert.Equal(t, 2, stats.DocumentFrequency("cat"))
	assert.Equal(t, 2, stats.DocumentFrequency("dog"))
	assert.Equal(t, 1, stats.DocumentFrequency("mat"))
	assert.Equal(t, 0, stats.DocumentFrequency("zebra"))
	assert.Equal(t, 3, stats.TermCount())
}

// TestNewStats_CountsChunksNotOccurrences tests df counts chunks once
func TestNewStats_CountsChunksNotOccurrences(t *testing.T) {
	stats := NewStats([]map[string]int{
		{"the": 10},
	})

	assert.Equal(t, 1, stats.DocumentFrequency("the"))
}

// TestNewStats_Empty tests the empty corpus
func TestNewStats_Empty(t *testing.T) {
	stats := NewStats(nil)

	assert.Equal(t, 0, stats.CorpusSize())
	assert.Equal(t, 0, stats.TermCount())
	assert.Equal(t, 0, stats.DocumentFrequency("anything"))
}

// TestNewStats_EmptyChunksCount tests chunks with no terms still count
// toward corpus size
func TestNewStats_EmptyChunksCount(t *testing.T) {
	stats := NewStats([]map[string]int{
		{},
		{"a": 1},
	})

	assert.Equal(t, 2, stats.CorpusSize())
	assert.Equal(t, 1, stats.DocumentFrequency("a"))
}
