// Package mcp provides an MCP (Model Context Protocol) server adapter for litholog.
// It lets AI assistants complete well logs and inspect the loaded predictors.
package mcp

import "errors"

// ErrMissingCompletionService is returned when the completion service is not provided.
var ErrMissingCompletionService = errors.New("mcp: completion service is required")

// ErrMissingTableReader is returned when no table reader is provided.
var ErrMissingTableReader = errors.New("mcp: table reader is required")
