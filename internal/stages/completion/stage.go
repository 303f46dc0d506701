// Package completion synthesizes a missing density curve from a regressor.
package completion

import (
	"context"
	"fmt"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/logger"
)

// Ensure Stage implements the interface.
var _ driven.Stage = (*Stage)(nil)

// State is the completion state of a dataset's density curve.
type State int

const (
	// Incomplete means the density curve is absent from the dataset.
	Incomplete State = iota
	// Complete means the density curve is present, measured or imputed.
	Complete
)

func (s State) String() string {
	if s == Complete {
		return "complete"
	}
	return "incomplete"
}

// StateOf reports the density completion state of ds. The check is made
// once for the whole curve, never per record.
func StateOf(ds *domain.Dataset) State {
	if ds.HasCurve(domain.CurveDensity) {
		return Complete
	}
	return Incomplete
}

// Stage imputes RHOB for every record when the curve is absent.
type Stage struct {
	regressor driven.Predictor
	features  domain.FeatureSchema
}

// New creates a completion stage. The regressor is normally a
// *predictors.Adapter so output length and order are guaranteed.
func New(regressor driven.Predictor, features domain.FeatureSchema) *Stage {
	return &Stage{
		regressor: regressor,
		features:  features,
	}
}

// Name returns the stage name.
func (s *Stage) Name() string {
	return domain.StageCompletion
}

// Process moves the dataset from Incomplete to Complete. A dataset that is
// already Complete is left untouched.
func (s *Stage) Process(ctx context.Context, ds *domain.Dataset) error {
	if StateOf(ds) == Complete {
		if ds.DensitySource == "" {
			ds.DensitySource = domain.DensityMeasured
		}
		logger.Debug("%s present, completion skipped", domain.CurveDensity)
		return nil
	}

	logger.Warn("%s (density) log missing, generating synthetic values with %s", domain.CurveDensity, s.regressor.Name())

	vectors, err := domain.BuildFeatures(ds, s.features)
	if err != nil {
		return err
	}

	values, err := s.regressor.Predict(ctx, vectors)
	if err != nil {
		return err
	}
	if len(values) != len(ds.Records) {
		return &domain.PredictionError{
			Predictor: s.regressor.Name(),
			Err:       fmt.Errorf("returned %d values for %d records", len(values), len(ds.Records)),
		}
	}

	for i := range ds.Records {
		ds.Records[i].Density = values[i]
	}
	ds.AddColumn(domain.CurveDensity)
	ds.DensitySource = domain.DensityImputed

	logger.Info("synthetic %s generated for %d records", domain.CurveDensity, len(values))
	return nil
}
