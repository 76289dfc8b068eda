package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/parley-labs/parley-cli/internal/connectors/filesystem"
	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
	"github.com/parley-labs/parley-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// pathResolver locates user-supplied paths on disk.
type pathResolver interface {
	Resolve(name string) (string, error)
}

// fileSource enumerates and reads candidate document files.
type fileSource interface {
	ListFiles(ctx context.Context, dir string) ([]filesystem.FileInfo, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// IndexService loads documents from disk into the retrieval engine.
type IndexService struct {
	engine      driven.DocumentIndex
	resolver    pathResolver
	source      fileSource
	normalisers map[string]driven.Normaliser
}

// NewIndexService creates a new index service. The normalisers are
// keyed off the extensions they report.
func NewIndexService(
	engine driven.DocumentIndex,
	resolver pathResolver,
	source fileSource,
	normalisers []driven.Normaliser,
) *IndexService {
	byExt := make(map[string]driven.Normaliser)
	for _, n := range normalisers {
		for _, ext := range n.SupportedExtensions() {
			byExt[strings.ToLower(ext)] = n
		}
	}
	return &IndexService{
		engine:      engine,
		resolver:    resolver,
		source:      source,
		normalisers: byExt,
	}
}

// LoadFile resolves, reads, normalises, and indexes a single file.
// The document id is the file's base name, so reloading the same file
// replaces its chunks.
func (s *IndexService) LoadFile(ctx context.Context, path string) (*driving.LoadReport, error) {
	resolved, err := s.resolver.Resolve(path)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(resolved)
	normaliser, ok := s.normalisers[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return nil, fmt.Errorf("no normaliser for %s: %w", name, domain.ErrUnsupportedType)
	}

	data, err := s.source.ReadFile(ctx, resolved)
	if err != nil {
		return nil, err
	}

	result, err := normaliser.Normalise(ctx, name, data)
	if err != nil {
		return nil, fmt.Errorf("normalising %s: %w", name, err)
	}

	count, err := s.engine.Load(name, result.Text)
	if err != nil {
		return nil, fmt.Errorf("indexing %s: %w", name, err)
	}

	logger.Debug("Loaded %s: %d chunks", name, count)
	return &driving.LoadReport{
		DocumentID: name,
		Path:       resolved,
		Title:      result.Title,
		ChunkCount: count,
	}, nil
}

// LoadFolder indexes every supported file directly inside dir, in name
// order. Files that fail to read or normalise are skipped with a
// warning rather than aborting the batch.
func (s *IndexService) LoadFolder(ctx context.Context, dir string) ([]driving.LoadReport, error) {
	resolved, err := s.resolver.Resolve(dir)
	if err != nil {
		return nil, err
	}

	files, err := s.source.ListFiles(ctx, resolved)
	if err != nil {
		return nil, err
	}

	logger.Section("Folder Load")
	logger.Debug("Folder %s: %d candidate files", resolved, len(files))

	reports := make([]driving.LoadReport, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report, err := s.LoadFile(ctx, f.Path)
		if err != nil {
			logger.Warn("Skipping %s: %v", f.Name, err)
			continue
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

// LoadText indexes raw text under an explicit document id, bypassing
// the filesystem.
func (s *IndexService) LoadText(ctx context.Context, id, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.engine.Load(id, text)
}

// Content returns a document's full indexed text, its chunks joined
// in ordinal order.
func (s *IndexService) Content(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	chunks, ok := s.engine.Chunks(id)
	if !ok {
		return "", fmt.Errorf("document %q is not loaded: %w", id, domain.ErrNotFound)
	}

	texts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		texts = append(texts, c.Text)
	}
	return strings.Join(texts, "\n\n"), nil
}

// Unload removes one document from the engine.
func (s *IndexService) Unload(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.engine.Unload(id) {
		return fmt.Errorf("document %q is not loaded: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Clear empties the engine.
func (s *IndexService) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.engine.Clear()
	return nil
}

// List reports the loaded documents in insertion order.
func (s *IndexService) List(ctx context.Context) ([]domain.DocumentInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.engine.List(), nil
}
