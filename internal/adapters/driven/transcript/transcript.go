// Package transcript records chat sessions to daily log files. Each
// calendar day gets one file; sessions append a header with their id
// and start time, then one line per chat turn.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/parley-labs/parley-cli/internal/core/domain"
	"github.com/parley-labs/parley-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.TranscriptWriter = (*Writer)(nil)

// filePrefix names transcript files: chatlog-2006-01-02.txt.
const filePrefix = "chatlog-"

// Writer appends chat lines to the current day's transcript file.
type Writer struct {
	dir string

	// now is swappable for tests.
	now func() time.Time

	mu     sync.Mutex
	opened bool
	closed bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithClock overrides the time source. Used by tests to pin the day
// and line timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		if now != nil {
			w.now = now
		}
	}
}

// NewWriter creates a transcript writer for the given directory.
// If dir is empty, defaults to ~/.parley/transcripts.
func NewWriter(dir string, opts ...Option) (*Writer, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".parley", "transcripts")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating transcript directory: %w", err)
	}

	w := &Writer{
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Begin opens a session and writes its header to today's file.
func (w *Writer) Begin(sessionID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return domain.ErrTranscriptClosed
	}

	ts := w.now()
	header := fmt.Sprintf("--- session %s started %s ---\n", sessionID, ts.Format("2006-01-02 15:04:05"))
	if err := w.appendLocked(header); err != nil {
		return fmt.Errorf("writing session header: %w", err)
	}
	w.opened = true
	return nil
}

// Append records one chat line as "[HH:MM:SS] who: text".
func (w *Writer) Append(speaker, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.opened {
		return domain.ErrTranscriptClosed
	}

	line := fmt.Sprintf("[%s] %s: %s\n", w.now().Format("15:04:05"), speaker, text)
	if err := w.appendLocked(line); err != nil {
		return fmt.Errorf("writing transcript line: %w", err)
	}
	return nil
}

// Close finishes the session. Closing twice is harmless.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.opened {
		footer := fmt.Sprintf("--- session ended %s ---\n", w.now().Format("15:04:05"))
		if err := w.appendLocked(footer); err != nil {
			return fmt.Errorf("writing session footer: %w", err)
		}
	}
	return nil
}

// Path returns the transcript file path for the current day.
func (w *Writer) Path() string {
	return filepath.Join(w.dir, filePrefix+w.now().Format("2006-01-02")+".txt")
}

// appendLocked appends text to today's file. Callers must hold the lock.
func (w *Writer) appendLocked(text string) error {
	f, err := os.OpenFile(w.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		return err
	}
	return nil
}
