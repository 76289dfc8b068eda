package driven

// TranscriptWriter records chat sessions to durable storage.
//
// A writer is single-session: Begin opens the session, Append records
// one line at a time, Close ends it. Append after Close returns
// domain.ErrTranscriptClosed.
type TranscriptWriter interface {
	// Begin opens a session identified by sessionID and writes the
	// session header.
	Begin(sessionID string) error

	// Append records one line spoken by the given speaker.
	Append(speaker, text string) error

	// Close finishes the session. Closing twice is harmless.
	Close() error
}
