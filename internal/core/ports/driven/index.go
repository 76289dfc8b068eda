package driven

import (
	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// DocumentIndex is the ranked-retrieval engine over loaded documents.
//
// Implementations own all corpus state (documents, chunks, term
// statistics, chunk vectors) and recompute it wholesale on every
// corpus change so weights stay consistent corpus-wide. Every method
// is safe for concurrent use and runs to completion without blocking
// on I/O, so no context is threaded through.
type DocumentIndex interface {
	// Load registers text under the given document id, replacing any
	// chunks previously held for that id, and returns the number of
	// chunks produced. Blank text registers the document with zero
	// chunks. A blank id is rejected with domain.ErrInvalidInput.
	Load(id, text string) (int, error)

	// Unload removes a document and its chunks. It returns false if
	// the id is not loaded.
	Unload(id string) bool

	// Clear removes every document, chunk, and statistic.
	Clear()

	// List reports the loaded documents in insertion order. Reloading
	// an id keeps its original position.
	List() []domain.DocumentInfo

	// Chunks returns a document's chunks in ordinal order. It returns
	// false if the id is not loaded.
	Chunks(id string) ([]domain.Chunk, bool)

	// Len returns the total number of chunks across all documents.
	Len() int

	// Query ranks every indexed chunk against the query text and
	// returns at most topK results, best first. Ties are broken by
	// document id, then chunk ordinal. An empty corpus or a query
	// sharing no vocabulary with it yields an empty result, not an
	// error. topK < 1 is rejected with domain.ErrInvalidInput.
	Query(text string, topK int) ([]domain.ScoredResult, error)
}
