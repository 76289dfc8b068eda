package driving

import (
	"context"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// FactService manages remembered key/value facts.
type FactService interface {
	// Remember stores a fact and returns it as stored (key normalized).
	// Blank keys and values are rejected with domain.ErrInvalidInput.
	Remember(ctx context.Context, key, value string) (*domain.Fact, error)

	// Recall fetches a fact by key.
	// Returns domain.ErrNotFound if nothing is remembered under it.
	Recall(ctx context.Context, key string) (*domain.Fact, error)

	// Search finds facts matching the query text.
	Search(ctx context.Context, query string) ([]domain.Fact, error)

	// Forget deletes a fact.
	// Returns domain.ErrNotFound if the key is unknown.
	Forget(ctx context.Context, key string) error

	// Keys lists all fact keys, most recently updated first.
	Keys(ctx context.Context) ([]string, error)
}
