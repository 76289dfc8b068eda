package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// Resolver locates user-supplied document paths. Bare names are tried
// against the working directory, then the configured documents
// directory, then ./docs.
type Resolver struct {
	docsDir string
}

// NewResolver creates a resolver. docsDir may be empty, in which case
// only the working directory and ./docs are searched.
func NewResolver(docsDir string) *Resolver {
	return &Resolver{docsDir: docsDir}
}

// Resolve returns an absolute path for name, or ErrNotFound when no
// candidate exists on disk.
func (r *Resolver) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("empty path: %w", domain.ErrInvalidInput)
	}

	if expanded, err := expandHome(name); err == nil {
		name = expanded
	}

	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("path %s: %w", name, domain.ErrNotFound)
		}
		return filepath.Clean(name), nil
	}

	candidates := []string{name}
	if r.docsDir != "" {
		candidates = append(candidates, filepath.Join(r.docsDir, name))
	}
	candidates = append(candidates, filepath.Join("docs", name))

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", candidate, err)
		}
		return abs, nil
	}
	return "", fmt.Errorf("path %q not found in working directory, documents directory or ./docs: %w", name, domain.ErrNotFound)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
