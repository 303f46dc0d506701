package file

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
	"github.com/custodia-labs/litholog/internal/normalisers/columns"
	"github.com/custodia-labs/litholog/internal/predictors"
)

// Configuration keys.
const (
	KeyDisplayColumns       = "engine.display_columns"
	KeyRequiredCurves       = "engine.required_curves"
	KeyRegressor            = "engine.regressor"
	KeyClassifier           = "engine.classifier"
	KeyAllowSharedPredictor = "engine.allow_shared_predictor"
	KeyFeatureCurves        = "engine.feature_curves"
	KeyFeatureNames         = "engine.feature_names"
	KeyStages               = "stages.order"
	KeyOutputBOM            = "output.bom"

	labelsPrefix     = "labels."
	predictorsPrefix = "predictors."
)

// LoadEngineConfig maps stored keys onto the engine configuration and the
// predictor declarations. Missing keys keep their defaults; when no
// predictors are declared the built-in defaults are returned. Curve names
// are normalised the same way input headers are.
func LoadEngineConfig(store driven.ConfigStore) (domain.EngineConfig, []domain.PredictorSpec, error) {
	cfg := domain.DefaultEngineConfig()

	if v := store.GetStringSlice(KeyDisplayColumns); len(v) > 0 {
		cfg.DisplayColumns = v
	}
	if v := store.GetStringSlice(KeyRequiredCurves); len(v) > 0 {
		cfg.RequiredCurves = columns.Normalise(v)
	}
	if v := store.GetString(KeyRegressor); v != "" {
		cfg.Regressor = v
	}
	if v := store.GetString(KeyClassifier); v != "" {
		cfg.Classifier = v
	}
	cfg.AllowSharedPredictor = store.GetBool(KeyAllowSharedPredictor)
	if v := store.GetStringSlice(KeyFeatureCurves); len(v) > 0 {
		cfg.Features = domain.FeatureSchema{Curves: columns.Normalise(v), Names: store.GetStringSlice(KeyFeatureNames)}
	}
	if v := store.GetStringSlice(KeyStages); len(v) > 0 {
		cfg.Stages = v
	}

	labels, err := loadLabels(store)
	if err != nil {
		return cfg, nil, err
	}
	if len(labels) > 0 {
		cfg.Labels = labels
	}

	specs, err := loadPredictors(store)
	if err != nil {
		return cfg, nil, err
	}
	if len(specs) == 0 {
		specs = predictors.DefaultSpecs()
	}

	return cfg, specs, nil
}

func loadLabels(store driven.ConfigStore) (domain.LabelMap, error) {
	keys := store.Keys(labelsPrefix)
	labels := make(domain.LabelMap, len(keys))
	for _, k := range keys {
		raw := strings.TrimPrefix(k, labelsPrefix)
		code, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: label code %q is not an integer", domain.ErrInvalidInput, raw)
		}
		label := store.GetString(k)
		if label == "" {
			return nil, fmt.Errorf("%w: label for code %d is empty", domain.ErrInvalidInput, code)
		}
		labels[code] = label
	}
	return labels, nil
}

func loadPredictors(store driven.ConfigStore) ([]domain.PredictorSpec, error) {
	names := make(map[string]struct{})
	for _, k := range store.Keys(predictorsPrefix) {
		rest := strings.TrimPrefix(k, predictorsPrefix)
		if i := strings.IndexByte(rest, '.'); i > 0 {
			names[rest[:i]] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	specs := make([]domain.PredictorSpec, 0, len(sorted))
	for _, name := range sorted {
		base := predictorsPrefix + name + "."
		spec := domain.PredictorSpec{
			Name:     name,
			Kind:     store.GetString(base + "kind"),
			Features: store.GetStringSlice(base + "features"),
		}
		if spec.Kind == "" {
			return nil, fmt.Errorf("%w: predictor %q has no kind", domain.ErrInvalidInput, name)
		}
		if _, present := store.Get(base + "weights"); present {
			w, ok := store.GetFloatSlice(base + "weights")
			if !ok {
				return nil, fmt.Errorf("%w: predictor %q weights must be numbers", domain.ErrInvalidInput, name)
			}
			spec.Weights = w
		}
		var err error
		if spec.Bias, err = optionalFloat(store, base+"bias", name); err != nil {
			return nil, err
		}
		if spec.Threshold, err = optionalFloat(store, base+"threshold", name); err != nil {
			return nil, err
		}
		if _, present := store.Get(base + "threshold"); present && (spec.Threshold <= 0 || spec.Threshold >= 1) {
			return nil, fmt.Errorf("%w: predictor %q threshold %v must be between 0 and 1",
				domain.ErrInvalidInput, name, spec.Threshold)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// optionalFloat reads a numeric key that may be absent. A present key
// that is not a number is an error.
func optionalFloat(store driven.ConfigStore, key, predictor string) (float64, error) {
	if _, present := store.Get(key); !present {
		return 0, nil
	}
	v, ok := store.GetFloat(key)
	if !ok {
		return 0, fmt.Errorf("%w: predictor %q %s must be a number",
			domain.ErrInvalidInput, predictor, key[strings.LastIndexByte(key, '.')+1:])
	}
	return v, nil
}

// DefaultValues returns the flattened configuration written by
// `litholog config init`.
func DefaultValues() map[string]any {
	cfg := domain.DefaultEngineConfig()

	values := map[string]any{
		KeyDisplayColumns:       cfg.DisplayColumns,
		KeyRequiredCurves:       cfg.RequiredCurves,
		KeyRegressor:            cfg.Regressor,
		KeyClassifier:           cfg.Classifier,
		KeyAllowSharedPredictor: cfg.AllowSharedPredictor,
		KeyFeatureCurves:        cfg.Features.Curves,
		KeyFeatureNames:         cfg.Features.Names,
		KeyStages:               cfg.Stages,
		KeyOutputBOM:            true,
	}
	for code, label := range cfg.Labels {
		values[labelsPrefix+strconv.Itoa(code)] = label
	}
	for _, spec := range predictors.DefaultSpecs() {
		base := predictorsPrefix + spec.Name + "."
		values[base+"kind"] = spec.Kind
		values[base+"weights"] = spec.Weights
		values[base+"bias"] = spec.Bias
		values[base+"features"] = spec.Features
		if spec.Threshold > 0 {
			values[base+"threshold"] = spec.Threshold
		}
	}
	return values
}

// OutputBOM reports whether exported CSV files start with a byte order
// mark. Defaults to true.
func OutputBOM(store driven.ConfigStore) bool {
	v, ok := store.Get(KeyOutputBOM)
	if !ok {
		return true
	}
	b, isBool := v.(bool)
	return !isBool || b
}
