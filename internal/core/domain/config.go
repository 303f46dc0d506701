package domain

import (
	"fmt"
	"sort"
)

// Stage names understood by the pipeline.
const (
	StageCompletion = "completion"
	StageLithology  = "lithology"
)

// LabelMap maps classifier codes to lithology labels.
type LabelMap map[int]string

// DefaultLabelMap returns the two-class shale/sandstone mapping.
func DefaultLabelMap() LabelMap {
	return LabelMap{
		0: "Shale",
		1: "Sandstone",
	}
}

// Lookup returns the label for a code.
func (m LabelMap) Lookup(code int) (string, bool) {
	label, ok := m[code]
	return label, ok
}

// Codes returns the known codes in ascending order.
func (m LabelMap) Codes() []int {
	codes := make([]int, 0, len(m))
	for c := range m {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	return codes
}

// EngineConfig is the explicit configuration handed to the engine.
type EngineConfig struct {
	// RequiredCurves must be present before any stage runs.
	RequiredCurves []string

	// Features is the input schema shared by both predictors.
	Features FeatureSchema

	// Labels maps classifier output codes to lithology names.
	Labels LabelMap

	// DisplayColumns is the projection exposed to previews and plots.
	DisplayColumns []string

	// Regressor and Classifier name entries in the predictor registry.
	Regressor  string
	Classifier string

	// AllowSharedPredictor permits both roles to name the same predictor.
	AllowSharedPredictor bool

	// Stages lists pipeline stages in execution order.
	Stages []string
}

// DefaultEngineConfig returns the configuration used when no file overrides it.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		RequiredCurves: []string{CurveDepth, CurveGammaRay},
		Features:       DefaultFeatureSchema(),
		Labels:         DefaultLabelMap(),
		DisplayColumns: []string{CurveDepth, CurveGammaRay, CurveDensity, ColumnLithology},
		Regressor:      "rhob",
		Classifier:     "lithology",
		Stages:         []string{StageCompletion, StageLithology},
	}
}

// Validate checks the configuration for internal consistency.
func (c EngineConfig) Validate() error {
	if err := c.Features.Validate(); err != nil {
		return err
	}
	if len(c.Labels) == 0 {
		return fmt.Errorf("%w: label map is empty", ErrInvalidInput)
	}
	if len(c.DisplayColumns) == 0 {
		return fmt.Errorf("%w: no display columns", ErrInvalidInput)
	}
	if c.Regressor == "" || c.Classifier == "" {
		return fmt.Errorf("%w: regressor and classifier must be named", ErrInvalidInput)
	}
	if c.Regressor == c.Classifier && !c.AllowSharedPredictor {
		return fmt.Errorf("%w: regressor and classifier both use predictor %q", ErrInvalidInput, c.Regressor)
	}

	seen := make(map[string]int, len(c.Stages))
	for i, s := range c.Stages {
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: stage %q listed twice", ErrInvalidInput, s)
		}
		seen[s] = i
	}
	ci, hasCompletion := seen[StageCompletion]
	li, hasLithology := seen[StageLithology]
	if !hasCompletion || !hasLithology {
		return fmt.Errorf("%w: stages must include %s and %s", ErrInvalidInput, StageCompletion, StageLithology)
	}
	if ci > li {
		return fmt.Errorf("%w: %s stage must run before %s", ErrInvalidInput, StageCompletion, StageLithology)
	}
	return nil
}

// PredictorSpec declares a predictor to construct at startup.
type PredictorSpec struct {
	Name      string
	Kind      string
	Weights   []float64
	Bias      float64
	Threshold float64
	Features  []string
}

// PredictorInfo describes a loaded predictor for listings.
type PredictorInfo struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind,omitempty"`
	Features []string `json:"features,omitempty"`
}
