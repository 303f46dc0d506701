package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/predictors"
)

func storeWith(t *testing.T, content string) *ConfigStore {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	return store
}

func TestLoadEngineConfig_Defaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	cfg, specs, err := LoadEngineConfig(store)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultEngineConfig(), cfg)
	assert.Equal(t, predictors.DefaultSpecs(), specs)
}

func TestLoadEngineConfig_Overrides(t *testing.T) {
	store := storeWith(t, `
[engine]
regressor = "rhob_nn"
classifier = "facies"
display_columns = ["DEPTH", "RHOB", "Lithology_Predicted"]

[labels]
0 = "Shale"
1 = "Sandstone"
2 = "Limestone"

[predictors.rhob_nn]
kind = "linear"
weights = [0.001, 0.002]
bias = 1.9
features = ["Depth", "GR"]

[predictors.facies]
kind = "logistic"
weights = [0.0, -0.1]
bias = 7
threshold = 0.6
`)

	cfg, specs, err := LoadEngineConfig(store)
	require.NoError(t, err)

	assert.Equal(t, "rhob_nn", cfg.Regressor)
	assert.Equal(t, "facies", cfg.Classifier)
	assert.Equal(t, []string{"DEPTH", "RHOB", "Lithology_Predicted"}, cfg.DisplayColumns)
	assert.Equal(t, domain.LabelMap{0: "Shale", 1: "Sandstone", 2: "Limestone"}, cfg.Labels)

	require.Len(t, specs, 2)
	assert.Equal(t, domain.PredictorSpec{
		Name: "facies", Kind: "logistic", Weights: []float64{0, -0.1}, Bias: 7, Threshold: 0.6,
	}, specs[0])
	assert.Equal(t, "rhob_nn", specs[1].Name)
	assert.Equal(t, []string{"Depth", "GR"}, specs[1].Features)
}

func TestLoadEngineConfig_BadLabelCode(t *testing.T) {
	store := storeWith(t, "[labels]\nsand = \"Sandstone\"\n")

	_, _, err := LoadEngineConfig(store)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLoadEngineConfig_PredictorWithoutKind(t *testing.T) {
	store := storeWith(t, "[predictors.rhob]\nbias = 2.0\n")

	_, _, err := LoadEngineConfig(store)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLoadEngineConfig_NonNumericWeights(t *testing.T) {
	store := storeWith(t, "[predictors.rhob]\nkind = \"linear\"\nweights = [\"a\"]\n")

	_, _, err := LoadEngineConfig(store)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLoadEngineConfig_NonNumericScalars(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bias", "[predictors.rhob]\nkind = \"linear\"\nbias = \"high\"\n"},
		{"threshold", "[predictors.facies]\nkind = \"logistic\"\nthreshold = \"half\"\n"},
		{"threshold above one", "[predictors.facies]\nkind = \"logistic\"\nthreshold = 1.5\n"},
		{"threshold zero", "[predictors.facies]\nkind = \"logistic\"\nthreshold = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadEngineConfig(storeWith(t, tt.content))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoadEngineConfig_IntegerBias(t *testing.T) {
	_, specs, err := LoadEngineConfig(storeWith(t, "[predictors.rhob]\nkind = \"linear\"\nbias = 2\n"))
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, 2.0, specs[0].Bias)
}

func TestLoadEngineConfig_NormalisesCurveNames(t *testing.T) {
	store := storeWith(t, `
[engine]
required_curves = ["depth", "gr "]
feature_curves = ["Depth", "gr"]
`)

	cfg, _, err := LoadEngineConfig(store)
	require.NoError(t, err)
	assert.Equal(t, []string{"DEPTH", "GR"}, cfg.RequiredCurves)
	assert.Equal(t, []string{"DEPTH", "GR"}, cfg.Features.Curves)
}

func TestDefaultValues_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SetAll(DefaultValues()))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)

	cfg, specs, err := LoadEngineConfig(reloaded)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultEngineConfig(), cfg)
	assert.ElementsMatch(t, predictors.DefaultSpecs(), specs)
}

func TestOutputBOM(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	assert.True(t, OutputBOM(store))

	require.NoError(t, store.Set(KeyOutputBOM, false))
	assert.False(t, OutputBOM(store))

	require.NoError(t, store.Set(KeyOutputBOM, true))
	assert.True(t, OutputBOM(store))
}
