package tui

import "errors"

// ErrMissingCompletionService is returned when the completion service is not provided.
var ErrMissingCompletionService = errors.New("tui: completion service is required")

// ErrNoTable is returned when the app is started without an input table.
var ErrNoTable = errors.New("tui: no input table")
