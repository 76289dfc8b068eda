package driven

import "context"

// Normaliser transforms file bytes into indexable plain text.
// Each normaliser handles specific file extensions (e.g., .md, .txt).
type Normaliser interface {
	// SupportedExtensions returns the lowercase file extensions this
	// normaliser handles, dot included (".md").
	SupportedExtensions() []string

	// Normalise decodes the file content into plain text with
	// normalized newlines. name is the file's display name, used for
	// diagnostics and title fallback.
	Normalise(ctx context.Context, name string, data []byte) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Title is a human-readable title extracted from the content,
	// or the file name when none is found.
	Title string

	// Text is the plain text ready for chunking and indexing.
	Text string
}
