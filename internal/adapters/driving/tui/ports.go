// Package tui provides an interactive viewer for annotated well logs.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/litholog/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Completion runs the engine on the loaded table.
	Completion driving.CompletionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(completion driving.CompletionService) *Ports {
	return &Ports{Completion: completion}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Completion == nil {
		return ErrMissingCompletionService
	}
	return nil
}
