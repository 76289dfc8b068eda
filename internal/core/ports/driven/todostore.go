package driven

import (
	"context"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// TodoStore persists todo-list entries.
type TodoStore interface {
	// Add appends a new open entry and returns it with its assigned id.
	Add(ctx context.Context, text string) (*domain.Todo, error)

	// List returns all entries in creation order.
	List(ctx context.Context) ([]domain.Todo, error)

	// Complete marks an entry done by id.
	// Returns domain.ErrNotFound if the id is unknown.
	Complete(ctx context.Context, id int64) error

	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
