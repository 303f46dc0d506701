package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/normalisers/columns"
	"github.com/custodia-labs/litholog/internal/predictors"
	"github.com/custodia-labs/litholog/internal/stages"
)

// funcPredictor computes one output per vector and counts calls.
type funcPredictor struct {
	name  string
	fn    func(v domain.FeatureVector) float64
	err   error
	calls int
}

func (f *funcPredictor) Name() string { return f.name }

func (f *funcPredictor) Predict(_ context.Context, vs []domain.FeatureVector) ([]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = f.fn(v)
	}
	return out, nil
}

func regression(v domain.FeatureVector) float64 {
	return 1.5 + v[0]/1000 + v[1]/100
}

func gammaCutoff(v domain.FeatureVector) float64 {
	if v[1] < 52 {
		return 1
	}
	return 0
}

type fixture struct {
	engine     *Engine
	regressor  *funcPredictor
	classifier *funcPredictor
}

func newFixture(t *testing.T, classify func(domain.FeatureVector) float64) *fixture {
	t.Helper()

	f := &fixture{
		regressor:  &funcPredictor{name: "rhob", fn: regression},
		classifier: &funcPredictor{name: "lithology", fn: classify},
	}
	reg, err := predictors.NewRegistry(f.regressor, f.classifier)
	require.NoError(t, err)

	cfg := domain.DefaultEngineConfig()
	sr := stages.NewRegistry()
	stages.RegisterDefaults(sr)
	pipeline, err := sr.BuildPipeline(stages.Env{Config: cfg, Predictors: reg})
	require.NoError(t, err)

	f.engine, err = NewEngine(cfg, columns.New(), pipeline, WithRunIDFunc(func() string { return "run-1" }))
	require.NoError(t, err)
	return f
}

func TestEngine_ImputesMissingDensity(t *testing.T) {
	f := newFixture(t, gammaCutoff)

	out, err := f.engine.CompleteTable(context.Background(), "well.csv",
		[]string{"depth", " gr "},
		[][]string{{"100", "50"}, {"101", "55"}},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Len())
	assert.Equal(t, "run-1", out.RunID)
	assert.Equal(t, domain.DensityImputed, out.DensitySource)

	density, ok := out.Series(domain.CurveDensity)
	assert.Equal(t, []bool{true, true}, ok)
	assert.InDelta(t, regression(domain.FeatureVector{100, 50}), density[0], 1e-12)
	assert.InDelta(t, regression(domain.FeatureVector{101, 55}), density[1], 1e-12)

	depth, _ := out.Series(domain.CurveDepth)
	assert.Equal(t, []float64{100, 101}, depth)
	assert.Equal(t, []string{"Sandstone", "Shale"}, out.Lithologies())
	assert.Equal(t, 1, f.regressor.calls)
}

func TestEngine_KeepsMeasuredDensity(t *testing.T) {
	f := newFixture(t, gammaCutoff)

	out, err := f.engine.CompleteTable(context.Background(), "well.csv",
		[]string{"DEPTH", "GR", "RHOB"},
		[][]string{{"100", "50", "2.3"}, {"101", "55", "2.4"}},
	)
	require.NoError(t, err)

	density, _ := out.Series(domain.CurveDensity)
	assert.Equal(t, []float64{2.3, 2.4}, density)
	assert.Equal(t, domain.DensityMeasured, out.DensitySource)
	assert.Equal(t, 0, f.regressor.calls)
	assert.Equal(t, []string{"Sandstone", "Shale"}, out.Lithologies())
}

func TestEngine_LithologyMapping(t *testing.T) {
	codes := map[float64]float64{10: 1, 20: 0, 30: 1}
	f := newFixture(t, func(v domain.FeatureVector) float64 { return codes[v[0]] })

	out, err := f.engine.CompleteTable(context.Background(), "",
		[]string{"DEPTH", "GR"},
		[][]string{{"10", "1"}, {"20", "1"}, {"30", "1"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"Sandstone", "Shale", "Sandstone"}, out.Lithologies())
}

func TestEngine_UnmappedCodeFails(t *testing.T) {
	f := newFixture(t, func(domain.FeatureVector) float64 { return 2 })

	out, err := f.engine.CompleteTable(context.Background(), "",
		[]string{"DEPTH", "GR"},
		[][]string{{"100", "50"}, {"101", "55"}},
	)

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domain.ErrMapping))
}

func TestEngine_MissingGammaRayFailsBeforePrediction(t *testing.T) {
	f := newFixture(t, gammaCutoff)

	out, err := f.engine.CompleteTable(context.Background(), "",
		[]string{"DEPTH", "RHOB"},
		[][]string{{"100", "2.3"}},
	)

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domain.ErrSchema))
	assert.Equal(t, 0, f.regressor.calls)
	assert.Equal(t, 0, f.classifier.calls)
}

func TestEngine_RegressorFailureIsFatal(t *testing.T) {
	f := newFixture(t, gammaCutoff)
	f.regressor.err = errors.New("shape mismatch")

	out, err := f.engine.CompleteTable(context.Background(), "",
		[]string{"DEPTH", "GR"},
		[][]string{{"100", "50"}},
	)

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domain.ErrPrediction))
	assert.Equal(t, 0, f.classifier.calls)
}

func TestEngine_RecordCountInvariant(t *testing.T) {
	f := newFixture(t, gammaCutoff)

	rows := [][]string{{"100", "50"}, {"100", "50"}, {"99", "60"}, {"101", "40"}}
	out, err := f.engine.CompleteTable(context.Background(), "", []string{"DEPTH", "GR"}, rows)
	require.NoError(t, err)

	assert.Equal(t, len(rows), out.Len())
	depth, _ := out.Series(domain.CurveDepth)
	assert.Equal(t, []float64{100, 100, 99, 101}, depth)
}

func TestEngine_PreservesUntouchedColumns(t *testing.T) {
	f := newFixture(t, gammaCutoff)

	out, err := f.engine.CompleteTable(context.Background(), "",
		[]string{"Depth", "GR", "nphi", "Zone"},
		[][]string{{"100.00", "50", "0.31", "Upper"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"DEPTH", "GR", "NPHI", "ZONE", "RHOB", "Lithology_Predicted"}, out.AllColumns)
	assert.Equal(t, "100.00", out.Value(0, "DEPTH"))
	assert.Equal(t, "0.31", out.Value(0, "NPHI"))
	assert.Equal(t, "Upper", out.Value(0, "ZONE"))
}

func TestEngine_EmptyDataset(t *testing.T) {
	f := newFixture(t, gammaCutoff)

	out, err := f.engine.CompleteTable(context.Background(), "", []string{"DEPTH", "GR"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, out.Len())
	assert.Equal(t, 0, f.regressor.calls)
}

func TestEngine_BlankMeasuredDensityStaysBlank(t *testing.T) {
	f := newFixture(t, gammaCutoff)

	out, err := f.engine.CompleteTable(context.Background(), "",
		[]string{"DEPTH", "GR", "RHOB"},
		[][]string{{"100", "50", ""}},
	)
	require.NoError(t, err)

	density, ok := out.Series(domain.CurveDensity)
	assert.False(t, ok[0])
	assert.True(t, math.IsNaN(density[0]))
	assert.Equal(t, "", out.Value(0, domain.CurveDensity))
}

func TestNewEngine_Validation(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	p := stages.NewPipeline()

	_, err := NewEngine(cfg, nil, p)
	assert.Error(t, err)

	_, err = NewEngine(cfg, columns.New(), nil)
	assert.Error(t, err)

	bad := cfg
	bad.Classifier = bad.Regressor
	_, err = NewEngine(bad, columns.New(), p)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestEngine_Complete_NilDataset(t *testing.T) {
	f := newFixture(t, gammaCutoff)

	_, err := f.engine.Complete(context.Background(), "", nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestEngine_DefaultRunID(t *testing.T) {
	e, err := NewEngine(domain.DefaultEngineConfig(), columns.New(), stages.NewPipeline())
	require.NoError(t, err)

	cfg := e.Config()
	cfg.DisplayColumns = []string{"DEPTH", "GR"}
	e.cfg = cfg

	out, err := e.CompleteTable(context.Background(), "", []string{"DEPTH", "GR"}, [][]string{{"1", "2"}})
	require.NoError(t, err)
	assert.Len(t, out.RunID, 36)
}
