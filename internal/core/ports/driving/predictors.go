package driving

import "github.com/custodia-labs/litholog/internal/core/domain"

// PredictorCatalog lists the predictors loaded at startup.
type PredictorCatalog interface {
	// Describe returns one entry per predictor, sorted by name.
	Describe() []domain.PredictorInfo
}
