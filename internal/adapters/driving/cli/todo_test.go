package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoCmd_AddAndList(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "todo", "add", "buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Added to-do #1: buy milk")

	out, err = executeCommand(t, "todo", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1. [ ] buy milk")
}

func TestTodoCmd_ListEmpty(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "todo", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No to-dos yet.")
}

func TestTodoCmd_Done(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "todo", "add", "water plants")
	require.NoError(t, err)

	out, err := executeCommand(t, "todo", "done", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Marked to-do #1 as done: water plants")

	out, err = executeCommand(t, "todo", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1. [x] water plants")
}

func TestTodoCmd_DoneOutOfRange(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "todo", "done", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "No such todo.")
}

func TestTodoCmd_DoneRejectsNonNumber(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "todo", "done", "first")

	assert.Error(t, err)
}

func TestTodoCmd_Clear(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "todo", "add", "a")
	require.NoError(t, err)
	_, err = executeCommand(t, "todo", "add", "b")
	require.NoError(t, err)

	out, err := executeCommand(t, "todo", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 2 to-dos.")
}
