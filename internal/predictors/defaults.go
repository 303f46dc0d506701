package predictors

import (
	"fmt"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/predictors/linear"
	"github.com/custodia-labs/litholog/internal/predictors/logistic"
)

// Predictor kinds understood by the default factory.
const (
	KindLinear   = "linear"
	KindLogistic = "logistic"
)

// RegisterDefaults registers all built-in predictor kinds with the factory.
// Call this during application initialisation.
func RegisterDefaults(f *Factory) {
	f.Register(KindLinear, buildLinear)
	f.Register(KindLogistic, buildLogistic)
}

// buildLinear creates a linear regressor.
// Spec fields used: Weights, Bias, Features.
func buildLinear(spec domain.PredictorSpec) (driven.Predictor, error) {
	return linear.New(spec.Name, spec.Weights, spec.Bias, linear.WithFeatureNames(spec.Features...))
}

// buildLogistic creates a binary logistic classifier.
// Spec fields used: Weights, Bias, Threshold (default 0.5), Features.
func buildLogistic(spec domain.PredictorSpec) (driven.Predictor, error) {
	opts := []logistic.Option{logistic.WithFeatureNames(spec.Features...)}
	if spec.Threshold < 0 || spec.Threshold >= 1 {
		return nil, fmt.Errorf("%w: threshold %v must be between 0 and 1", domain.ErrInvalidInput, spec.Threshold)
	}
	if spec.Threshold > 0 {
		opts = append(opts, logistic.WithThreshold(spec.Threshold))
	}
	return logistic.New(spec.Name, spec.Weights, spec.Bias, opts...)
}

// DefaultSpecs returns the predictors used when no configuration declares any.
// The coefficients give a plausible density trend with depth and a
// gamma-ray cutoff near 75 API between sandstone and shale.
func DefaultSpecs() []domain.PredictorSpec {
	names := domain.DefaultFeatureSchema().Names
	return []domain.PredictorSpec{
		{
			Name:     "rhob",
			Kind:     KindLinear,
			Weights:  []float64{0.0001, 0.004},
			Bias:     2.0,
			Features: names,
		},
		{
			Name:     "lithology",
			Kind:     KindLogistic,
			Weights:  []float64{0, -0.2},
			Bias:     15,
			Features: names,
		},
	}
}
