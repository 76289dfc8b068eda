package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley-cli/internal/adapters/driven/storage/memory"
	"github.com/parley-labs/parley-cli/internal/core/domain"
)

func newTodoService() *TodoService {
	return NewTodoService(memory.NewTodoStore())
}

func TestTodoService_AddAndList(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	first, err := svc.Add(ctx, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", first.Text)
	assert.False(t, first.Done)

	_, err = svc.Add(ctx, "water plants")
	require.NoError(t, err)

	todos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "buy milk", todos[0].Text)
	assert.Equal(t, "water plants", todos[1].Text)
}

func TestTodoService_AddRejectsBlank(t *testing.T) {
	svc := newTodoService()

	_, err := svc.Add(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTodoService_DoneByPosition(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "first")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "second")
	require.NoError(t, err)

	todo, err := svc.Done(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "second", todo.Text)
	assert.True(t, todo.Done)

	todos, err := svc.List(ctx)
	require.NoError(t, err)
	assert.False(t, todos[0].Done)
	assert.True(t, todos[1].Done)
}

func TestTodoService_DoneOutOfRange(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "only one")
	require.NoError(t, err)

	_, err = svc.Done(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Done(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTodoService_Clear(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "a")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "b")
	require.NoError(t, err)

	removed, err := svc.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	todos, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)
}
