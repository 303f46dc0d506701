// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Engine is the log completion and lithology inference service:
// it normalises the table, validates required curves, runs the stage
// pipeline and aggregates the annotated result.
package services
