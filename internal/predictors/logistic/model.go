// Package logistic provides a binary logistic regression classifier.
package logistic

import (
	"context"
	"fmt"
	"math"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/predictors/linear"
)

// Ensure Model implements the interfaces.
var (
	_ driven.Predictor    = (*Model)(nil)
	_ driven.FeatureNamer = (*Model)(nil)
	_ driven.Describer    = (*Model)(nil)
)

// DefaultThreshold is the probability at or above which class 1 is emitted.
const DefaultThreshold = 0.5

// Model emits class 1 when sigmoid(w·x + b) >= threshold, else class 0.
type Model struct {
	name      string
	weights   []float64
	bias      float64
	threshold float64
	features  []string
}

// Option configures the model.
type Option func(*Model)

// WithThreshold sets the decision threshold. Values outside (0, 1) are ignored.
func WithThreshold(t float64) Option {
	return func(m *Model) {
		if t > 0 && t < 1 {
			m.threshold = t
		}
	}
}

// WithFeatureNames records the feature names the model was fitted on.
func WithFeatureNames(names ...string) Option {
	return func(m *Model) {
		if len(names) > 0 {
			m.features = append([]string(nil), names...)
		}
	}
}

// New creates a logistic classifier.
func New(name string, weights []float64, bias float64, opts ...Option) (*Model, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: logistic model needs at least one weight", domain.ErrInvalidInput)
	}

	m := &Model{
		name:      name,
		weights:   append([]float64(nil), weights...),
		bias:      bias,
		threshold: DefaultThreshold,
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

// Kind returns "logistic".
func (m *Model) Kind() string {
	return "logistic"
}

// FeatureNames returns the fitted feature names, or nil if unknown.
func (m *Model) FeatureNames() []string {
	return append([]string(nil), m.features...)
}

// Threshold returns the decision threshold.
func (m *Model) Threshold() float64 {
	return m.threshold
}

// PredictProba returns p(class=1) for every vector.
func (m *Model) PredictProba(vectors []domain.FeatureVector) ([]float64, error) {
	out := make([]float64, len(vectors))
	for i, v := range vectors {
		if len(v) != len(m.weights) {
			return nil, fmt.Errorf("shape mismatch: row %d has %d features, model expects %d", i+1, len(v), len(m.weights))
		}
		out[i] = sigmoid(linear.Dot(m.weights, v) + m.bias)
	}
	return out, nil
}

// Predict returns class codes 0 or 1, in order.
func (m *Model) Predict(_ context.Context, vectors []domain.FeatureVector) ([]float64, error) {
	probs, err := m.PredictProba(vectors)
	if err != nil {
		return nil, err
	}
	for i, p := range probs {
		if p >= m.threshold {
			probs[i] = 1
		} else {
			probs[i] = 0
		}
	}
	return probs, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
