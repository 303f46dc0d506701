// Package lithology labels every depth sample with a rock type.
package lithology

import (
	"context"
	"fmt"
	"math"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/logger"
)

// Ensure Stage implements the interface.
var _ driven.Stage = (*Stage)(nil)

// Stage classifies every record and maps class codes to labels.
type Stage struct {
	classifier driven.Predictor
	features   domain.FeatureSchema
	labels     domain.LabelMap
}

// New creates a lithology stage.
func New(classifier driven.Predictor, features domain.FeatureSchema, labels domain.LabelMap) *Stage {
	return &Stage{
		classifier: classifier,
		features:   features,
		labels:     labels,
	}
}

// Name returns the stage name.
func (s *Stage) Name() string {
	return domain.StageLithology
}

// Process labels every record. Labels are written only once every code
// has mapped, so a failure leaves the dataset unlabelled.
func (s *Stage) Process(ctx context.Context, ds *domain.Dataset) error {
	vectors, err := domain.BuildFeatures(ds, s.features)
	if err != nil {
		return err
	}

	codes, err := s.classifier.Predict(ctx, vectors)
	if err != nil {
		return err
	}
	if len(codes) != len(ds.Records) {
		return &domain.PredictionError{
			Predictor: s.classifier.Name(),
			Err:       fmt.Errorf("returned %d codes for %d records", len(codes), len(ds.Records)),
		}
	}

	labels, err := s.Map(codes)
	if err != nil {
		return err
	}

	for i := range ds.Records {
		ds.Records[i].Lithology = labels[i]
	}
	ds.AddColumn(domain.ColumnLithology)

	logger.Info("lithology assigned to %d records", len(labels))
	return nil
}

// Map converts classifier outputs to labels. Outputs must be integral and
// present in the label map.
func (s *Stage) Map(codes []float64) ([]string, error) {
	labels := make([]string, len(codes))
	for i, c := range codes {
		if c != math.Trunc(c) {
			return nil, &domain.PredictionError{
				Predictor: s.classifier.Name(),
				Err:       fmt.Errorf("non-integral class code %v at row %d", c, i+1),
			}
		}
		if c < math.MinInt32 || c > math.MaxInt32 {
			return nil, &domain.PredictionError{
				Predictor: s.classifier.Name(),
				Err:       fmt.Errorf("class code %g at row %d is out of range", c, i+1),
			}
		}
		label, ok := s.labels.Lookup(int(c))
		if !ok {
			return nil, &domain.MappingError{Code: int(c), Row: i + 1}
		}
		labels[i] = label
	}
	return labels, nil
}
