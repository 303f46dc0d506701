// Package linear provides a weights-and-bias linear regression predictor.
package linear

import (
	"context"
	"fmt"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
)

// Ensure Model implements the interfaces.
var (
	_ driven.Predictor    = (*Model)(nil)
	_ driven.FeatureNamer = (*Model)(nil)
	_ driven.Describer    = (*Model)(nil)
)

// Model predicts w·x + b for every feature vector.
// It is immutable after construction and safe for concurrent use.
type Model struct {
	name     string
	weights  []float64
	bias     float64
	features []string
}

// Option configures the model.
type Option func(*Model)

// WithFeatureNames records the feature names the model was fitted on.
func WithFeatureNames(names ...string) Option {
	return func(m *Model) {
		if len(names) > 0 {
			m.features = append([]string(nil), names...)
		}
	}
}

// New creates a linear model. At least one weight is required.
func New(name string, weights []float64, bias float64, opts ...Option) (*Model, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: linear model needs at least one weight", domain.ErrInvalidInput)
	}

	m := &Model{
		name:    name,
		weights: append([]float64(nil), weights...),
		bias:    bias,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.features != nil && len(m.features) != len(m.weights) {
		return nil, fmt.Errorf("%w: %d feature names for %d weights",
			domain.ErrInvalidInput, len(m.features), len(m.weights))
	}
	return m, nil
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// Kind returns "linear".
func (m *Model) Kind() string {
	return "linear"
}

// FeatureNames returns the fitted feature names, or nil if unknown.
func (m *Model) FeatureNames() []string {
	return append([]string(nil), m.features...)
}

// Predict returns one value per vector, in order.
func (m *Model) Predict(_ context.Context, vectors []domain.FeatureVector) ([]float64, error) {
	out := make([]float64, len(vectors))
	for i, v := range vectors {
		if len(v) != len(m.weights) {
			return nil, fmt.Errorf("shape mismatch: row %d has %d features, model expects %d", i+1, len(v), len(m.weights))
		}
		out[i] = Dot(m.weights, v) + m.bias
	}
	return out, nil
}

// Dot returns the inner product of w and x, which must be the same length.
func Dot(w []float64, x []float64) float64 {
	sum := 0.0
	for j := range w {
		sum += w[j] * x[j]
	}
	return sum
}
