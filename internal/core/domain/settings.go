package domain

import (
	"fmt"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// StorageBackend selects where facts and todos are persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists to a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps everything in process memory (lost on exit).
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite (persistent, local database)"
	case StorageMemory:
		return "Memory (volatile, lost on exit)"
	default:
		return unknownDescription
	}
}

// IndexSettings holds chunking and indexing behaviour.
type IndexSettings struct {
	// MaxChunkSize is the maximum chunk length in runes.
	MaxChunkSize int
}

// QuerySettings holds ranked retrieval behaviour.
type QuerySettings struct {
	// TopK is the default number of results per question.
	TopK int

	// SnippetLength is the maximum snippet length in runes.
	SnippetLength int
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// Backend selects the fact/todo store implementation.
	Backend StorageBackend

	// DataDir overrides the default data directory (~/.parley).
	DataDir string
}

// TranscriptSettings holds chat transcript configuration.
type TranscriptSettings struct {
	// Enabled turns transcript writing on or off.
	Enabled bool

	// Dir overrides the default transcript directory
	// (~/.parley/transcripts).
	Dir string
}

// LoadSettings holds document loading configuration.
type LoadSettings struct {
	// Extensions is the set of file extensions eligible for loading.
	Extensions []string

	// MaxFileSize is the largest file, in bytes, the loader will read.
	MaxFileSize int64
}

// WatchSettings holds watch-mode configuration.
type WatchSettings struct {
	// Debounce is the minimum interval between watch-triggered reloads.
	Debounce time.Duration
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Index holds chunking settings.
	Index IndexSettings

	// Query holds retrieval settings.
	Query QuerySettings

	// Storage holds persistence settings.
	Storage StorageSettings

	// Transcript holds chat transcript settings.
	Transcript TranscriptSettings

	// Load holds document loading settings.
	Load LoadSettings

	// Watch holds watch-mode settings.
	Watch WatchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Index: IndexSettings{
			MaxChunkSize: 600,
		},
		Query: QuerySettings{
			TopK:          3,
			SnippetLength: 240,
		},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
		Transcript: TranscriptSettings{
			Enabled: true,
		},
		Load: LoadSettings{
			Extensions:  []string{".txt", ".md", ".log"},
			MaxFileSize: 2 << 20,
		},
		Watch: WatchSettings{
			Debounce: 2 * time.Second,
		},
	}
}

// Validate checks settings for internal consistency. It returns an
// error wrapping ErrInvalidInput describing the first problem found.
func (s AppSettings) Validate() error {
	if s.Index.MaxChunkSize < 80 {
		return fmt.Errorf("%w: index.max_chunk_size must be at least 80, got %d",
			ErrInvalidInput, s.Index.MaxChunkSize)
	}
	if s.Query.TopK < 1 {
		return fmt.Errorf("%w: query.top_k must be at least 1, got %d",
			ErrInvalidInput, s.Query.TopK)
	}
	if s.Query.SnippetLength < 40 {
		return fmt.Errorf("%w: query.snippet_length must be at least 40, got %d",
			ErrInvalidInput, s.Query.SnippetLength)
	}
	if !s.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: storage.backend %q is not one of sqlite, memory",
			ErrInvalidInput, s.Storage.Backend)
	}
	if len(s.Load.Extensions) == 0 {
		return fmt.Errorf("%w: load.extensions must name at least one extension",
			ErrInvalidInput)
	}
	for _, ext := range s.Load.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: load.extensions entry %q must look like \".txt\"",
				ErrInvalidInput, ext)
		}
	}
	if s.Load.MaxFileSize <= 0 {
		return fmt.Errorf("%w: load.max_file_size must be positive, got %d",
			ErrInvalidInput, s.Load.MaxFileSize)
	}
	if s.Watch.Debounce <= 0 {
		return fmt.Errorf("%w: watch.debounce must be positive, got %s",
			ErrInvalidInput, s.Watch.Debounce)
	}
	return nil
}

// AllStorageBackends returns all available storage backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageSQLite, StorageMemory}
}
