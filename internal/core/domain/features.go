package domain

import "fmt"

// FeatureVector is the ordered numeric input for one record.
type FeatureVector []float64

// FeatureSchema is the ordered list of curves a predictor was fitted on.
// Curves are dataset column names; Names are the feature names the model
// expects, position for position.
type FeatureSchema struct {
	Curves []string
	Names  []string
}

// DefaultFeatureSchema is the (depth, gamma ray) input both predictors use.
func DefaultFeatureSchema() FeatureSchema {
	return FeatureSchema{
		Curves: []string{CurveDepth, CurveGammaRay},
		Names:  []string{"Depth", "GR"},
	}
}

// Len returns the number of features per vector.
func (s FeatureSchema) Len() int {
	return len(s.Curves)
}

// Validate checks that the schema is well formed.
func (s FeatureSchema) Validate() error {
	if len(s.Curves) == 0 {
		return fmt.Errorf("%w: feature schema has no curves", ErrInvalidInput)
	}
	if len(s.Names) != 0 && len(s.Names) != len(s.Curves) {
		return fmt.Errorf("%w: feature schema has %d curves but %d names",
			ErrInvalidInput, len(s.Curves), len(s.Names))
	}
	return nil
}

// BuildFeatures extracts one vector per record, in record order, holding
// exactly the schema's curves in schema order. Output index i always
// corresponds to ds.Records[i].
func BuildFeatures(ds *Dataset, schema FeatureSchema) ([]FeatureVector, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: dataset is nil", ErrInvalidInput)
	}

	var missing []string
	for _, c := range schema.Curves {
		if !ds.HasCurve(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	vectors := make([]FeatureVector, len(ds.Records))
	for i, rec := range ds.Records {
		vec := make(FeatureVector, len(schema.Curves))
		for j, c := range schema.Curves {
			v, ok := rec.Curve(c)
			if !ok {
				return nil, &SchemaError{Row: i + 1, Curve: c, Reason: "value is missing or not numeric"}
			}
			vec[j] = v
		}
		vectors[i] = vec
	}
	return vectors, nil
}
