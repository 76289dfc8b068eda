// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// SessionStarted carries the greeting from a freshly opened chat session.
type SessionStarted struct {
	Greeting string
	Err      error
}

// ReplyReceived carries the assistant's reply to one chat line.
type ReplyReceived struct {
	Reply *domain.ChatReply
	Err   error
}

// AnswersReceived carries ranked answers back to the find view.
type AnswersReceived struct {
	Question string
	Answers  []domain.Answer
	Err      error
}

// DocumentsLoaded carries the list of loaded documents.
type DocumentsLoaded struct {
	Documents []domain.DocumentInfo
	Err       error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewChat is the conversational view and the default.
	ViewChat ViewType = iota
	// ViewFind is the direct document search view.
	ViewFind
	// ViewDocuments lists the loaded documents.
	ViewDocuments
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewChat:
		return "chat"
	case ViewFind:
		return "find"
	case ViewDocuments:
		return "documents"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
