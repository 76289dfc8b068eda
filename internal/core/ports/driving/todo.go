package driving

import (
	"context"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// TodoService manages the todo list.
type TodoService interface {
	// Add appends an entry. Blank text is rejected with
	// domain.ErrInvalidInput.
	Add(ctx context.Context, text string) (*domain.Todo, error)

	// List returns all entries in creation order.
	List(ctx context.Context) ([]domain.Todo, error)

	// Done marks the entry at the 1-based list position as completed
	// and returns it. Out-of-range positions return domain.ErrNotFound.
	Done(ctx context.Context, position int) (*domain.Todo, error)

	// Clear removes every entry and reports how many were removed.
	Clear(ctx context.Context) (int, error)
}
