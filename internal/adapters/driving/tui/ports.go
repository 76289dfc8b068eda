// Package tui provides the interactive terminal user interface for parley.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chat handles conversational turns.
	Chat driving.ChatService

	// Index manages the loaded document set.
	Index driving.IndexService

	// Query answers ranked questions against the loaded documents.
	Query driving.QueryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	chat driving.ChatService,
	index driving.IndexService,
	query driving.QueryService,
) *Ports {
	return &Ports{
		Chat:  chat,
		Index: index,
		Query: query,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.Index == nil {
		return ErrMissingIndexService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}
