package index

// Stats holds corpus-wide term statistics: for every term, the number
// of chunks it appears in at least once. Stats are rebuilt from the
// full chunk set on every corpus change rather than patched
// incrementally, so the counts can never drift.
type Stats struct {
	df         map[string]int
	corpusSize int
}

// NewStats computes statistics over every chunk's term-frequency map.
// The corpus size is the number of chunks, counting chunks with no
// terms.
func NewStats(chunkFreqs []map[string]int) *Stats {
	df := make(map[string]int)
	for _, freqs := range chunkFreqs {
		for term := range freqs {
			df[term]++
		}
	}
	return &Stats{
		df:         df,
		corpusSize: len(chunkFreqs),
	}
}

// DocumentFrequency returns how many chunks contain the term, or 0 if
// the term is unseen.
func (s *Stats) DocumentFrequency(term string) int {
	return s.df[term]
}

// CorpusSize returns the total number of chunks the statistics were
// computed over.
func (s *Stats) CorpusSize() int {
	return s.corpusSize
}

// TermCount returns the number of distinct terms in the corpus.
func (s *Stats) TermCount() int {
	return len(s.df)
}
