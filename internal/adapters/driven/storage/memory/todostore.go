package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
)

// Ensure TodoStore implements the interface.
var _ driven.TodoStore = (*TodoStore)(nil)

// TodoStore is an in-memory implementation of driven.TodoStore.
type TodoStore struct {
	mu     sync.RWMutex
	todos  []domain.Todo
	nextID int64
}

// NewTodoStore creates a new in-memory todo store.
func NewTodoStore() *TodoStore {
	return &TodoStore{nextID: 1}
}

// Add appends a new open entry and returns it with its assigned id.
func (s *TodoStore) Add(_ context.Context, text string) (*domain.Todo, error) {
	if text == "" {
		return nil, fmt.Errorf("todo text must be non-empty: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todo := domain.Todo{
		ID:        s.nextID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++
	s.todos = append(s.todos, todo)
	return &todo, nil
}

// List returns all entries in creation order.
func (s *TodoStore) List(_ context.Context) ([]domain.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Todo, len(s.todos))
	copy(out, s.todos)
	return out, nil
}

// Complete marks an entry done by id.
func (s *TodoStore) Complete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Done = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// Clear removes every entry and returns how many were removed.
func (s *TodoStore) Clear(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.todos)
	s.todos = nil
	return removed, nil
}
