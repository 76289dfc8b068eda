package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeChat runs the chat command with scripted stdin. Tests are not
// attached to a terminal, so the command takes the line-REPL path.
func executeChat(t *testing.T, input string) string {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs([]string{"chat"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestChatCmd_REPLSession(t *testing.T) {
	setupTestServices(t)

	out := executeChat(t, "add buy milk\nlist todos\nbye\n")

	assert.Contains(t, out, "Hi! Ask me about your docs, or say 'help'.")
	assert.Contains(t, out, "Added to-do #1: buy milk")
	assert.Contains(t, out, "1. [ ] buy milk")
	assert.Contains(t, out, "Bye!")
}

func TestChatCmd_REPLStopsAtBye(t *testing.T) {
	setupTestServices(t)

	out := executeChat(t, "bye\njoke\n")

	assert.Contains(t, out, "Bye!")
	assert.NotContains(t, out, "dark mode")
}

func TestChatCmd_REPLEndsOnEOF(t *testing.T) {
	setupTestServices(t)

	out := executeChat(t, "hello\n")

	assert.Contains(t, out, "Hi! Ask me about your docs, or say 'help'.")
}
