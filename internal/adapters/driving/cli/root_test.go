package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "parley", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	verboseFlag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{
		"ask", "chat", "docs", "fact", "load", "mcp",
		"settings", "todo", "version", "watch",
	} {
		assert.True(t, names[want], "command %s should be registered", want)
	}
}

func TestWatchCmd_RequiresDir(t *testing.T) {
	_, err := executeCommand(t, "watch")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestMCPServeCmd_HasPortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestCommandsFailWithoutServices(t *testing.T) {
	old := &Services{
		Index:    indexService,
		Query:    queryService,
		Facts:    factService,
		Todos:    todoService,
		Chat:     chatService,
		Settings: settingsService,
		Watcher:  watchConnector,
	}
	SetServices(&Services{})
	t.Cleanup(func() { SetServices(old) })

	_, err := executeCommand(t, "ask", "anything")
	assert.ErrorIs(t, err, errNotConfigured)

	_, err = executeCommand(t, "docs", "list")
	assert.ErrorIs(t, err, errNotConfigured)
}
