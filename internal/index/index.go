// Package index implements the in-memory TF-IDF retrieval engine: it
// owns the loaded documents, their chunks, the corpus-wide term
// statistics, and every chunk's weight vector, and answers ranked
// free-text queries over them.
//
// Corpus state is recomputed wholesale on every load, unload, and
// clear. That trades work for correctness: weights are always
// consistent corpus-wide, and there is no incremental-update drift.
// Local corpora are small enough that the trade is invisible.
package index

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/parley-labs/parley-cli/internal/chunker"
	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
	"github.com/parley-labs/parley-cli/internal/tokenizer"
)

// Ensure Index implements the engine port.
var _ driven.DocumentIndex = (*Index)(nil)

// chunkEntry is one indexed chunk with its precomputed term data.
type chunkEntry struct {
	docID   string
	ordinal int
	text    string
	freqs   map[string]int
	total   int
	vector  Vector
}

// Index is the document index aggregate. All methods are safe for
// concurrent use; a single RWMutex spans each operation so a query
// can never observe a half-recomputed corpus.
type Index struct {
	mu       sync.RWMutex
	splitter *chunker.Chunker
	order    []string
	chunks   map[string][]*chunkEntry
	stats    *Stats
}

// Option configures the index.
type Option func(*Index)

// WithChunker sets the chunker used to split loaded documents.
func WithChunker(c *chunker.Chunker) Option {
	return func(idx *Index) {
		if c != nil {
			idx.splitter = c
		}
	}
}

// New creates an empty index.
func New(opts ...Option) *Index {
	idx := &Index{
		splitter: chunker.New(),
		chunks:   make(map[string][]*chunkEntry),
		stats:    NewStats(nil),
	}

	for _, opt := range opts {
		opt(idx)
	}

	return idx
}

// Load registers text under id, replacing any chunks previously held
// for that id, and returns the number of chunks produced. Text that
// chunks to nothing still registers the document, with zero chunks.
// A load either fully applies or leaves the index untouched.
func (idx *Index) Load(id, text string) (int, error) {
	if strings.TrimSpace(id) == "" {
		return 0, fmt.Errorf("%w: document id must not be blank", domain.ErrInvalidInput)
	}

	// Chunking and tokenizing are pure; do them outside the lock.
	pieces := idx.splitter.Chunk(text)
	entries := make([]*chunkEntry, 0, len(pieces))
	for i, piece := range pieces {
		terms := tokenizer.Tokenize(piece)
		entries = append(entries, &chunkEntry{
			docID:   id,
			ordinal: i,
			text:    piece,
			freqs:   tokenizer.Frequencies(terms),
			total:   len(terms),
		})
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, exists := idx.chunks[id]; !exists {
		idx.order = append(idx.order, id)
	}
	idx.chunks[id] = entries
	idx.recompute()

	return len(entries), nil
}

// Unload removes a document and its chunks, then recomputes the
// remaining corpus. It returns false if the id is not loaded.
func (idx *Index) Unload(id string) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.chunks[id]; !ok {
		return false
	}

	delete(idx.chunks, id)
	for i, existing := range idx.order {
		if existing == id {
			idx.order = append(idx.order[:i], idx.order[i+1:]...)
			break
		}
	}
	idx.recompute()

	return true
}

// Clear removes every document, chunk, and statistic.
func (idx *Index) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.order = nil
	idx.chunks = make(map[string][]*chunkEntry)
	idx.stats = NewStats(nil)
}

// List reports the loaded documents in insertion order. Reloading an
// id keeps its original position.
func (idx *Index) List() []domain.DocumentInfo {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	infos := make([]domain.DocumentInfo, 0, len(idx.order))
	for _, id := range idx.order {
		infos = append(infos, domain.DocumentInfo{
			ID:         id,
			ChunkCount: len(idx.chunks[id]),
		})
	}
	return infos
}

// Chunks returns a document's chunks in ordinal order. It returns
// false if the id is not loaded.
func (idx *Index) Chunks(id string) ([]domain.Chunk, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	entries, ok := idx.chunks[id]
	if !ok {
		return nil, false
	}

	out := make([]domain.Chunk, 0, len(entries))
	for _, entry := range entries {
		out = append(out, domain.Chunk{
			DocumentID: entry.docID,
			Ordinal:    entry.ordinal,
			Text:       entry.text,
		})
	}
	return out, true
}

// Len returns the total number of chunks across all documents.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.stats.CorpusSize()
}

// Query ranks every indexed chunk against the query text and returns
// at most topK results, best first. Chunks sharing no vocabulary with
// the query are excluded. Equal scores are ordered by document id,
// then chunk ordinal, so identical queries always return identical
// results.
func (idx *Index) Query(text string, topK int) ([]domain.ScoredResult, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: topK must be positive, got %d", domain.ErrInvalidInput, topK)
	}

	terms := tokenizer.Tokenize(text)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.stats.CorpusSize() == 0 || len(terms) == 0 {
		return nil, nil
	}

	queryVec := BuildVector(tokenizer.Frequencies(terms), len(terms), idx.stats)
	if queryVec.Norm() == 0 {
		return nil, nil
	}

	var results []domain.ScoredResult
	for _, id := range idx.order {
		for _, entry := range idx.chunks[id] {
			score := CosineSimilarity(queryVec, entry.vector)
			if score <= 0 {
				continue
			}
			if score > 1 {
				score = 1 // float rounding can nudge past 1
			}
			results = append(results, domain.ScoredResult{
				DocumentID: entry.docID,
				Ordinal:    entry.ordinal,
				Score:      score,
				Text:       entry.text,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].DocumentID != results[j].DocumentID {
			return results[i].DocumentID < results[j].DocumentID
		}
		return results[i].Ordinal < results[j].Ordinal
	})

	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

// recompute rebuilds term statistics and every chunk vector from the
// current corpus. Callers must hold the write lock.
func (idx *Index) recompute() {
	var freqSets []map[string]int
	for _, id := range idx.order {
		for _, entry := range idx.chunks[id] {
			freqSets = append(freqSets, entry.freqs)
		}
	}

	idx.stats = NewStats(freqSets)

	for _, id := range idx.order {
		for _, entry := range idx.chunks[id] {
			entry.vector = BuildVector(entry.freqs, entry.total, idx.stats)
		}
	}
}
