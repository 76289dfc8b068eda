package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
)

// todoStore implements driven.TodoStore.
type todoStore struct {
	store *Store
}

var _ driven.TodoStore = (*todoStore)(nil)

// Add appends a new open entry and returns it with its assigned id.
func (t *todoStore) Add(ctx context.Context, text string) (*domain.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("todo text must be non-empty: %w", domain.ErrInvalidInput)
	}

	createdAt := time.Now().UTC()
	result, err := t.store.db.ExecContext(ctx, `
		INSERT INTO todos (text, done, created_at) VALUES (?, 0, ?)
	`, text, createdAt)
	if err != nil {
		return nil, fmt.Errorf("adding todo: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading todo id: %w", err)
	}

	return &domain.Todo{
		ID:        id,
		Text:      text,
		Done:      false,
		CreatedAt: createdAt,
	}, nil
}

// List returns all entries in creation order.
func (t *todoStore) List(ctx context.Context) ([]domain.Todo, error) {
	rows, err := t.store.db.QueryContext(ctx, `
		SELECT id, text, done, created_at FROM todos ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		var todo domain.Todo
		var createdAt sql.NullTime
		if err := rows.Scan(&todo.ID, &todo.Text, &todo.Done, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		if createdAt.Valid {
			todo.CreatedAt = createdAt.Time
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}
	return todos, nil
}

// Complete marks an entry done by id.
func (t *todoStore) Complete(ctx context.Context, id int64) error {
	result, err := t.store.db.ExecContext(ctx, `
		UPDATE todos SET done = 1 WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("completing todo: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking completion: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear removes every entry and returns how many were removed.
func (t *todoStore) Clear(ctx context.Context) (int, error) {
	result, err := t.store.db.ExecContext(ctx, `DELETE FROM todos`)
	if err != nil {
		return 0, fmt.Errorf("clearing todos: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking clear: %w", err)
	}
	return int(affected), nil
}
