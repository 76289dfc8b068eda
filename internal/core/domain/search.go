package domain

// ScoredResult is a single ranked retrieval hit. It is produced per
// query and never persisted.
type ScoredResult struct {
	// DocumentID identifies the document the matching chunk belongs to.
	DocumentID string

	// Ordinal is the chunk's position within its document.
	Ordinal int

	// Score is the cosine similarity between the query vector and the
	// chunk vector, in [0, 1].
	Score float64

	// Text is the full chunk text.
	Text string
}

// Answer is a presentation-ready retrieval hit: the chunk text has been
// truncated to a snippet suitable for a terminal or chat reply.
type Answer struct {
	// DocumentID identifies the source document.
	DocumentID string

	// Ordinal is the chunk's position within its document.
	Ordinal int

	// Score is the relevance score carried over from the index.
	Score float64

	// Snippet is the truncated chunk text.
	Snippet string
}
