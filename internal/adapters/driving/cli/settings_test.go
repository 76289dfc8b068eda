package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_Show(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "query.top_k            3")
	assert.Contains(t, out, "storage.backend        sqlite")
	assert.Contains(t, out, "load.extensions        .txt, .md, .log")
}

func TestSettingsCmd_Set(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "settings", "set", "query.top_k", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Set query.top_k = 7")

	out, err = executeCommand(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "query.top_k            7")
}

func TestSettingsCmd_SetInvalid(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "settings", "set", "query.top_k", "zero")
	assert.Error(t, err)

	_, err = executeCommand(t, "settings", "set", "no.such.key", "x")
	assert.Error(t, err)
}

func TestSettingsCmd_Reset(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "settings", "set", "query.top_k", "9")
	require.NoError(t, err)

	out, err := executeCommand(t, "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings restored to defaults.")

	out, err = executeCommand(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "query.top_k            3")
}
