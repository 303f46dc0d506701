package mcp

import (
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/core/ports/driving"
)

// Ports aggregates the interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Completion runs the engine.
	Completion driving.CompletionService

	// Predictors lists loaded predictors.
	Predictors driving.PredictorCatalog

	// Reader parses CSV text passed to tools.
	Reader driven.TableReader
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Completion == nil {
		return ErrMissingCompletionService
	}
	if p.Reader == nil {
		return ErrMissingTableReader
	}
	// Predictors is optional
	return nil
}
