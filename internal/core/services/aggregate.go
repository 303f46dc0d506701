package services

import (
	"github.com/custodia-labs/litholog/internal/core/domain"
)

// Aggregate turns a completed dataset into the read-only annotated result.
// Every original column is retained; display only selects a projection.
// The dataset must not be used by the caller afterwards.
func Aggregate(runID, source string, ds *domain.Dataset, display []string) (*domain.AnnotatedDataset, error) {
	var missing []string
	for _, c := range display {
		if !ds.HasCurve(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{Missing: missing}
	}

	records := make([]domain.Record, len(ds.Records))
	for i, r := range ds.Records {
		raw := make(map[string]string, len(r.Raw))
		for k, v := range r.Raw {
			raw[k] = v
		}
		r.Raw = raw
		records[i] = r
	}

	return domain.NewAnnotatedDataset(
		runID,
		source,
		ds.DensitySource,
		append([]string(nil), display...),
		append([]string(nil), ds.Columns...),
		records,
	), nil
}
