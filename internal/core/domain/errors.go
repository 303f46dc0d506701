package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent pipeline failures.
// Every one of them is fatal for the request that raised it.
var (
	// ErrSchema indicates a required curve is missing or unusable.
	// Only the density curve is imputable; DEPTH and GR are not.
	ErrSchema = errors.New("schema error")

	// ErrPrediction indicates a predictor invocation failed.
	ErrPrediction = errors.New("prediction error")

	// ErrMapping indicates the classifier emitted a code with no label.
	ErrMapping = errors.New("mapping error")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedType indicates an unknown predictor kind or stage name.
	ErrUnsupportedType = errors.New("unsupported type")
)

// SchemaError describes why a dataset cannot feed the pipeline.
// Either Missing lists absent curves, or Row/Curve locate a bad value.
type SchemaError struct {
	Missing []string
	Row     int
	Curve   string
	Reason  string
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("schema error: missing required curve(s) %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("schema error: row %d curve %s: %s", e.Row, e.Curve, e.Reason)
}

// Unwrap allows errors.Is(err, ErrSchema).
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// PredictionError wraps a failure raised by, or detected around, a predictor.
type PredictionError struct {
	Predictor string
	Err       error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction error: predictor %q: %v", e.Predictor, e.Err)
}

// Unwrap allows errors.Is against both ErrPrediction and the cause.
func (e *PredictionError) Unwrap() []error {
	return []error{ErrPrediction, e.Err}
}

// MappingError reports a class code outside the configured label map.
type MappingError struct {
	Code int
	Row  int
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping error: class code %d at row %d has no lithology label", e.Code, e.Row)
}

// Unwrap allows errors.Is(err, ErrMapping).
func (e *MappingError) Unwrap() error {
	return ErrMapping
}
