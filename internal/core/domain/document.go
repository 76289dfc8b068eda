package domain

// Chunk represents a retrievable unit of text within a loaded document.
// Documents are split into chunks so query hits point at a bounded
// passage rather than a whole file.
type Chunk struct {
	// DocumentID is the identifier of the owning document.
	DocumentID string

	// Ordinal is the position of this chunk within its document,
	// starting at 0 and following the order the chunker produced.
	Ordinal int

	// Text is the chunk content.
	Text string
}

// DocumentInfo describes one loaded document as reported by the index.
type DocumentInfo struct {
	// ID is the document identifier (display name, usually a file name).
	ID string

	// ChunkCount is the number of chunks currently registered for the
	// document. A blank document legitimately has zero chunks.
	ChunkCount int
}
