package predictors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
)

func TestFactory_RegisterAndBuild(t *testing.T) {
	f := NewFactory()
	f.Register("fixed", func(spec domain.PredictorSpec) (driven.Predictor, error) {
		return &mockPredictor{name: spec.Name}, nil
	})

	assert.True(t, f.Has("fixed"))
	assert.False(t, f.Has("forest"))

	p, err := f.Build(domain.PredictorSpec{Name: "x", Kind: "fixed"})
	require.NoError(t, err)
	assert.Equal(t, "x", p.Name())
}

func TestFactory_UnknownKind(t *testing.T) {
	f := NewFactory()

	_, err := f.Build(domain.PredictorSpec{Name: "x", Kind: "forest"})
	assert.True(t, errors.Is(err, domain.ErrUnsupportedType))
}

func TestRegisterDefaults(t *testing.T) {
	f := NewFactory()
	RegisterDefaults(f)

	assert.Equal(t, []string{KindLinear, KindLogistic}, f.Kinds())
}

func TestBuildLogistic_ThresholdOutOfRange(t *testing.T) {
	f := NewFactory()
	RegisterDefaults(f)

	for _, th := range []float64{-0.1, 1, 2} {
		_, err := f.Build(domain.PredictorSpec{Name: "facies", Kind: KindLogistic, Weights: []float64{0, 1}, Threshold: th})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "threshold %v", th)
	}

	_, err := f.Build(domain.PredictorSpec{Name: "facies", Kind: KindLogistic, Weights: []float64{0, 1}, Threshold: 0.7})
	assert.NoError(t, err)
}

func TestDefaultSpecs_BuildAndClassify(t *testing.T) {
	f := NewFactory()
	RegisterDefaults(f)

	r, err := f.BuildRegistry(DefaultSpecs())
	require.NoError(t, err)
	assert.Equal(t, []string{"lithology", "rhob"}, r.Names())

	cls, err := r.Get("lithology")
	require.NoError(t, err)

	a := NewAdapter(cls, domain.DefaultFeatureSchema())
	codes, err := a.Predict(context.Background(), []domain.FeatureVector{{1000, 30}, {1001, 120}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, codes)
}

func TestFactory_BuildRegistryPropagatesErrors(t *testing.T) {
	f := NewFactory()
	RegisterDefaults(f)

	_, err := f.BuildRegistry([]domain.PredictorSpec{{Name: "bad", Kind: KindLinear}})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
