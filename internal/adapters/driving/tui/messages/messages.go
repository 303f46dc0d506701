// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/litholog/internal/core/domain"
)

// CompletionRequested asks the app to run completion on the loaded table.
type CompletionRequested struct{}

// CompletionFinished carries the annotated dataset back to the model.
type CompletionFinished struct {
	Dataset *domain.AnnotatedDataset
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewTable shows the annotated rows.
	ViewTable ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewTable:
		return "table"
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
