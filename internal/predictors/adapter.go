// Package predictors provides the predictor adapter, the startup registry
// of loaded predictors and the factory that builds them from configuration.
package predictors

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/logger"
)

// Adapter gives every predictor the same call surface and guarantees:
// output length equals input length and output order matches input order.
// Any failure is reported as a *domain.PredictionError.
type Adapter struct {
	predictor driven.Predictor
	schema    domain.FeatureSchema
}

// NewAdapter wraps a predictor fitted on the given feature schema.
func NewAdapter(p driven.Predictor, schema domain.FeatureSchema) *Adapter {
	return &Adapter{
		predictor: p,
		schema:    schema,
	}
}

// Name returns the wrapped predictor's name.
func (a *Adapter) Name() string {
	if a.predictor == nil {
		return ""
	}
	return a.predictor.Name()
}

// Predict runs the predictor over vectors. No partial results are returned.
func (a *Adapter) Predict(ctx context.Context, vectors []domain.FeatureVector) (out []float64, err error) {
	if a.predictor == nil {
		return nil, &domain.PredictionError{Err: fmt.Errorf("%w: no predictor configured", domain.ErrNotFound)}
	}
	name := a.predictor.Name()

	if named, ok := a.predictor.(driven.FeatureNamer); ok && len(a.schema.Names) > 0 {
		// Predictors declared without feature names skip the check.
		if got := named.FeatureNames(); len(got) > 0 && !slices.Equal(got, a.schema.Names) {
			return nil, &domain.PredictionError{
				Predictor: name,
				Err:       fmt.Errorf("fitted on features %v, engine supplies %v", got, a.schema.Names),
			}
		}
	}

	for i, v := range vectors {
		if len(v) != a.schema.Len() {
			return nil, &domain.PredictionError{
				Predictor: name,
				Err:       fmt.Errorf("vector %d has %d features, want %d", i, len(v), a.schema.Len()),
			}
		}
	}

	if len(vectors) == 0 {
		return []float64{}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &domain.PredictionError{Predictor: name, Err: fmt.Errorf("predictor panicked: %v", r)}
		}
	}()

	logger.Debug("predictor %s: %d vectors", name, len(vectors))
	values, err := a.predictor.Predict(ctx, vectors)
	if err != nil {
		return nil, &domain.PredictionError{Predictor: name, Err: err}
	}
	if len(values) != len(vectors) {
		return nil, &domain.PredictionError{
			Predictor: name,
			Err:       fmt.Errorf("returned %d values for %d inputs", len(values), len(vectors)),
		}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &domain.PredictionError{
				Predictor: name,
				Err:       fmt.Errorf("non-finite output at row %d", i+1),
			}
		}
	}

	return values, nil
}
