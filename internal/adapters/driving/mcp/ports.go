package mcp

import (
	"github.com/parley-labs/parley-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Index manages the loaded document set.
	Index driving.IndexService

	// Query answers ranked questions against the loaded documents.
	Query driving.QueryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Index == nil {
		return ErrMissingIndexService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}
