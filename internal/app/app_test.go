package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
)

func storeWith(t *testing.T, content string) driven.ConfigStore {
	t.Helper()
	dir := t.TempDir()
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))
	}
	store, err := OpenConfig(dir)
	require.NoError(t, err)
	return store
}

func TestBuild_Defaults(t *testing.T) {
	c, err := Build(storeWith(t, ""))
	require.NoError(t, err)

	assert.Equal(t, []string{"lithology", "rhob"}, c.Predictors.Names())
	assert.Equal(t, []string{domain.StageCompletion, domain.StageLithology}, c.Pipeline.Names())

	header, rows, err := c.Reader.Read(strings.NewReader("Depth,gr\n1000,40\n1001,110\n"))
	require.NoError(t, err)

	ds, err := c.Engine.CompleteTable(context.Background(), "well.csv", header, rows)
	require.NoError(t, err)

	assert.Equal(t, domain.DensityImputed, ds.DensitySource)
	assert.Equal(t, []string{"Sandstone", "Shale"}, ds.Lithologies())

	var buf bytes.Buffer
	require.NoError(t, c.Writer.Export(&buf, ds, nil))
	assert.True(t, strings.HasPrefix(buf.String(), "\ufeffDEPTH,GR,RHOB,Lithology_Predicted"))
}

func TestBuild_WithoutBOM(t *testing.T) {
	c, err := Build(storeWith(t, "[output]\nbom = false\n"))
	require.NoError(t, err)

	header, rows, err := c.Reader.Read(strings.NewReader("DEPTH,GR,RHOB\n1000,40,2.3\n"))
	require.NoError(t, err)
	ds, err := c.Engine.CompleteTable(context.Background(), "well.csv", header, rows)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Writer.Export(&buf, ds, nil))
	assert.True(t, strings.HasPrefix(buf.String(), "DEPTH,GR,RHOB,Lithology_Predicted"))
	assert.Equal(t, domain.DensityMeasured, ds.DensitySource)
}

func TestBuild_SharedPredictorRejected(t *testing.T) {
	_, err := Build(storeWith(t, "[engine]\nregressor = \"rhob\"\nclassifier = \"rhob\"\n"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestBuild_SharedPredictorAllowed(t *testing.T) {
	c, err := Build(storeWith(t, `
[engine]
regressor = "lithology"
classifier = "lithology"
allow_shared_predictor = true
`))

	require.NoError(t, err)
	assert.True(t, c.Config.AllowSharedPredictor)
}

func TestBuild_UnknownKind(t *testing.T) {
	_, err := Build(storeWith(t, "[predictors.rhob]\nkind = \"forest\"\n"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedType))
}

func TestBuild_MissingPredictor(t *testing.T) {
	_, err := Build(storeWith(t, "[engine]\nregressor = \"nope\"\n"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestBuild_StagesMustIncludeLithology(t *testing.T) {
	_, err := Build(storeWith(t, `
[engine]
display_columns = ["DEPTH", "GR", "RHOB"]
[stages]
order = ["completion"]
`))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestBuild_PredictorsWithoutFeatures(t *testing.T) {
	c, err := Build(storeWith(t, `
[predictors.rhob]
kind = "linear"
weights = [0.0001, 0.004]
bias = 2.0
[predictors.lithology]
kind = "logistic"
weights = [0.0, -0.2]
bias = 15.0
`))
	require.NoError(t, err)

	ds, err := c.Engine.CompleteTable(context.Background(), "well.csv", []string{"DEPTH", "GR"}, [][]string{{"100", "50"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sandstone"}, ds.Lithologies())
}

func TestBuild_LowercaseCurveNames(t *testing.T) {
	c, err := Build(storeWith(t, `
[engine]
required_curves = ["depth", " gr"]
feature_curves = ["depth", "gr"]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"DEPTH", "GR"}, c.Config.RequiredCurves)
	assert.Equal(t, []string{"DEPTH", "GR"}, c.Config.Features.Curves)

	ds, err := c.Engine.CompleteTable(context.Background(), "well.csv", []string{"Depth", "GR"}, [][]string{{"100", "120"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Shale"}, ds.Lithologies())
}
