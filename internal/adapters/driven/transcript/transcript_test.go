package transcript

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestWriter_SessionLifecycle(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)

	w, err := NewWriter(dir, WithClock(fixedClock(ts)))
	require.NoError(t, err)

	require.NoError(t, w.Begin("abc-123"))
	require.NoError(t, w.Append("you", "hello"))
	require.NoError(t, w.Append("parley", "Hey! What's up?"))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(w.Path())
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "--- session abc-123 started 2026-08-25 14:30:00 ---")
	assert.Contains(t, content, "[14:30:00] you: hello")
	assert.Contains(t, content, "[14:30:00] parley: Hey! What's up?")
	assert.Contains(t, content, "--- session ended 14:30:00 ---")
}

func TestWriter_DailyFileName(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	w, err := NewWriter(dir, WithClock(fixedClock(ts)))
	require.NoError(t, err)

	assert.Contains(t, w.Path(), "chatlog-2026-08-25.txt")
}

func TestWriter_AppendBeforeBegin(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	err = w.Append("you", "too early")
	assert.ErrorIs(t, err, domain.ErrTranscriptClosed)
}

func TestWriter_AppendAfterClose(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Begin("s1"))
	require.NoError(t, w.Close())

	err = w.Append("you", "too late")
	assert.ErrorIs(t, err, domain.ErrTranscriptClosed)
}

func TestWriter_CloseTwice(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Begin("s1"))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWriter_SessionsAppendToSameDayFile(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	first, err := NewWriter(dir, WithClock(fixedClock(ts)))
	require.NoError(t, err)
	require.NoError(t, first.Begin("one"))
	require.NoError(t, first.Close())

	second, err := NewWriter(dir, WithClock(fixedClock(ts.Add(time.Hour))))
	require.NoError(t, err)
	require.NoError(t, second.Begin("two"))
	require.NoError(t, second.Close())

	data, err := os.ReadFile(second.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "session one")
	assert.Contains(t, string(data), "session two")
}
