package driven

import (
	"context"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// FactStore persists remembered key/value facts.
// Keys are stored normalized (see domain.NormalizeFactKey); callers
// may pass raw user input.
type FactStore interface {
	// Remember stores or overwrites a fact.
	Remember(ctx context.Context, key, value string) error

	// Recall fetches a fact by exact normalized key.
	// Returns domain.ErrNotFound if the key is unknown.
	Recall(ctx context.Context, key string) (*domain.Fact, error)

	// Search returns facts whose key or value matches the query,
	// best match first, at most limit entries. An empty result is
	// not an error.
	Search(ctx context.Context, query string, limit int) ([]domain.Fact, error)

	// Forget deletes a fact. It reports whether the key existed.
	Forget(ctx context.Context, key string) (bool, error)

	// Keys lists all fact keys, most recently updated first.
	Keys(ctx context.Context) ([]string, error)
}
