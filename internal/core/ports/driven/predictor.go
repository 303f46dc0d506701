package driven

import (
	"context"

	"github.com/custodia-labs/litholog/internal/core/domain"
)

// Predictor is an externally trained model with a batch call surface.
// Regression predictors return continuous values; classifiers return
// integral class codes encoded as float64.
type Predictor interface {
	// Name returns the registry name for logging and errors.
	Name() string

	// Predict maps each feature vector to one output value.
	Predict(ctx context.Context, vectors []domain.FeatureVector) ([]float64, error)
}

// FeatureNamer is implemented by predictors that know the feature names
// they were fitted on. The adapter checks them against the feature schema.
type FeatureNamer interface {
	FeatureNames() []string
}

// Describer is implemented by predictors that can report their kind.
type Describer interface {
	Kind() string
}

// PredictorRegistry holds the predictors loaded at process start.
// Implementations must be safe for concurrent reads.
type PredictorRegistry interface {
	// Get returns the predictor registered under name.
	// Returns domain.ErrNotFound if no such predictor exists.
	Get(name string) (Predictor, error)

	// Names returns all registered predictor names in sorted order.
	Names() []string
}
