package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

// Ensure TodoService implements the interface.
var _ driving.TodoService = (*TodoService)(nil)

// TodoService manages the todo list.
type TodoService struct {
	store driven.TodoStore
}

// NewTodoService creates a new todo service.
func NewTodoService(store driven.TodoStore) *TodoService {
	return &TodoService{store: store}
}

// Add appends an entry.
func (s *TodoService) Add(ctx context.Context, text string) (*domain.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("todo text is empty: %w", domain.ErrInvalidInput)
	}
	return s.store.Add(ctx, text)
}

// List returns all entries in creation order.
func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	return s.store.List(ctx)
}

// Done marks the entry at the 1-based list position as completed.
// Positions are list order, not storage ids, matching what a list
// command just displayed.
func (s *TodoService) Done(ctx context.Context, position int) (*domain.Todo, error) {
	todos, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if position < 1 || position > len(todos) {
		return nil, fmt.Errorf("no todo at position %d: %w", position, domain.ErrNotFound)
	}

	todo := todos[position-1]
	if err := s.store.Complete(ctx, todo.ID); err != nil {
		return nil, fmt.Errorf("completing todo #%d: %w", position, err)
	}
	todo.Done = true
	return &todo, nil
}

// Clear removes every entry and reports how many were removed.
func (s *TodoService) Clear(ctx context.Context) (int, error) {
	return s.store.Clear(ctx)
}
