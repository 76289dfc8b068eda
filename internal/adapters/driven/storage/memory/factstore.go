package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
)

// Ensure FactStore implements the interface.
var _ driven.FactStore = (*FactStore)(nil)

// defaultSearchLimit caps fact search results when the caller passes a
// non-positive limit.
const defaultSearchLimit = 10

// FactStore is an in-memory implementation of driven.FactStore.
// Facts are lost on process exit; it backs the "memory" storage
// backend and the service tests.
type FactStore struct {
	mu    sync.RWMutex
	facts map[string]domain.Fact
}

// NewFactStore creates a new in-memory fact store.
func NewFactStore() *FactStore {
	return &FactStore{
		facts: make(map[string]domain.Fact),
	}
}

// Remember stores or overwrites a fact under its normalized key.
func (s *FactStore) Remember(_ context.Context, key, value string) error {
	key = domain.NormalizeFactKey(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return fmt.Errorf("fact key and value must be non-empty: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts[key] = domain.Fact{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

// Recall fetches a fact by exact normalized key.
func (s *FactStore) Recall(_ context.Context, key string) (*domain.Fact, error) {
	key = domain.NormalizeFactKey(key)
	if key == "" {
		return nil, fmt.Errorf("fact key must be non-empty: %w", domain.ErrInvalidInput)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	fact, ok := s.facts[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &fact, nil
}

// Search returns facts whose key or value contains the query,
// case-insensitive, most recently updated first.
func (s *FactStore) Search(_ context.Context, query string, limit int) ([]domain.Fact, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, fmt.Errorf("search query must be non-empty: %w", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.Fact
	for _, fact := range s.facts {
		if strings.Contains(fact.Key, query) || strings.Contains(strings.ToLower(fact.Value), query) {
			matches = append(matches, fact)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].UpdatedAt.Equal(matches[j].UpdatedAt) {
			return matches[i].UpdatedAt.After(matches[j].UpdatedAt)
		}
		return matches[i].Key < matches[j].Key
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Forget deletes a fact and reports whether it existed.
func (s *FactStore) Forget(_ context.Context, key string) (bool, error) {
	key = domain.NormalizeFactKey(key)
	if key == "" {
		return false, fmt.Errorf("fact key must be non-empty: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.facts[key]; !ok {
		return false, nil
	}
	delete(s.facts, key)
	return true, nil
}

// Keys lists all fact keys, most recently updated first.
func (s *FactStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	facts := make([]domain.Fact, 0, len(s.facts))
	for _, fact := range s.facts {
		facts = append(facts, fact)
	}
	sort.Slice(facts, func(i, j int) bool {
		if !facts[i].UpdatedAt.Equal(facts[j].UpdatedAt) {
			return facts[i].UpdatedAt.After(facts[j].UpdatedAt)
		}
		return facts[i].Key < facts[j].Key
	})

	keys := make([]string, 0, len(facts))
	for _, fact := range facts {
		keys = append(keys, fact.Key)
	}
	return keys, nil
}
