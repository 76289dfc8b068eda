package driving

import (
	"context"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// LoadReport describes the outcome of loading one file.
type LoadReport struct {
	// DocumentID is the id the document was registered under
	// (its base file name).
	DocumentID string

	// Path is the resolved absolute path that was read.
	Path string

	// Title is the title the normaliser extracted.
	Title string

	// ChunkCount is the number of chunks indexed. Zero means the file
	// held no indexable text; the document is still registered.
	ChunkCount int
}

// IndexService loads documents into the retrieval engine and manages
// the loaded set.
type IndexService interface {
	// LoadFile resolves, reads, normalises, and indexes a single file.
	LoadFile(ctx context.Context, path string) (*LoadReport, error)

	// LoadFolder indexes every supported file directly inside dir,
	// in name order. Unsupported and oversized files are skipped.
	LoadFolder(ctx context.Context, dir string) ([]LoadReport, error)

	// LoadText indexes raw text under an explicit document id,
	// bypassing the filesystem. Returns the chunk count.
	LoadText(ctx context.Context, id, text string) (int, error)

	// Content returns a document's full indexed text, its chunks
	// joined in ordinal order. Returns domain.ErrNotFound if the id
	// is not loaded.
	Content(ctx context.Context, id string) (string, error)

	// Unload removes one document from the engine.
	// Returns domain.ErrNotFound if the id is not loaded.
	Unload(ctx context.Context, id string) error

	// Clear empties the engine.
	Clear(ctx context.Context) error

	// List reports the loaded documents in insertion order.
	List(ctx context.Context) ([]domain.DocumentInfo, error)
}
