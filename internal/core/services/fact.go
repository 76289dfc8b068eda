package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

// Ensure FactService implements the interface.
var _ driving.FactService = (*FactService)(nil)

// factSearchLimit caps how many facts a fuzzy search returns.
const factSearchLimit = 10

// FactService manages remembered key/value facts.
type FactService struct {
	store driven.FactStore
}

// NewFactService creates a new fact service.
func NewFactService(store driven.FactStore) *FactService {
	return &FactService{store: store}
}

// Remember stores a fact under its normalized key and returns it as
// stored.
func (s *FactService) Remember(ctx context.Context, key, value string) (*domain.Fact, error) {
	key = domain.NormalizeFactKey(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return nil, fmt.Errorf("fact key is empty: %w", domain.ErrInvalidInput)
	}
	if value == "" {
		return nil, fmt.Errorf("fact value is empty: %w", domain.ErrInvalidInput)
	}

	if err := s.store.Remember(ctx, key, value); err != nil {
		return nil, fmt.Errorf("remembering %q: %w", key, err)
	}
	return s.store.Recall(ctx, key)
}

// Recall fetches a fact by key.
func (s *FactService) Recall(ctx context.Context, key string) (*domain.Fact, error) {
	key = domain.NormalizeFactKey(key)
	if key == "" {
		return nil, fmt.Errorf("fact key is empty: %w", domain.ErrInvalidInput)
	}
	return s.store.Recall(ctx, key)
}

// Search finds facts matching the query text, best match first.
func (s *FactService) Search(ctx context.Context, query string) ([]domain.Fact, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Fact{}, nil
	}
	return s.store.Search(ctx, query, factSearchLimit)
}

// Forget deletes a fact.
func (s *FactService) Forget(ctx context.Context, key string) error {
	key = domain.NormalizeFactKey(key)
	if key == "" {
		return fmt.Errorf("fact key is empty: %w", domain.ErrInvalidInput)
	}

	existed, err := s.store.Forget(ctx, key)
	if err != nil {
		return fmt.Errorf("forgetting %q: %w", key, err)
	}
	if !existed {
		return fmt.Errorf("no fact saved for %q: %w", key, domain.ErrNotFound)
	}
	return nil
}

// Keys lists all fact keys, most recently updated first.
func (s *FactService) Keys(ctx context.Context) ([]string, error) {
	return s.store.Keys(ctx)
}
