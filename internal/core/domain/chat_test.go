package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIntent_EndsSession tests that only bye terminates a chat
func TestIntent_EndsSession(t *testing.T) {
	assert.True(t, IntentBye.EndsSession())

	for _, intent := range []Intent{
		IntentAsk, IntentGreet, IntentHelp, IntentEcho,
		IntentLoadFile, IntentListDocs, IntentRemember,
	} {
		assert.False(t, intent.EndsSession(), "intent %s should not end the session", intent)
	}
}

// TestIntent_String tests the string representation
func TestIntent_String(t *testing.T) {
	assert.Equal(t, "ask", IntentAsk.String())
	assert.Equal(t, "load_folder", IntentLoadFolder.String())
	assert.Equal(t, "echo", IntentEcho.String())
}
