package logistic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/litholog/internal/core/domain"
)

func TestModel_Predict(t *testing.T) {
	// Class 1 below GR 75, class 0 above.
	m, err := New("lithology", []float64{0, -0.2}, 15, WithFeatureNames("Depth", "GR"))
	require.NoError(t, err)

	out, err := m.Predict(context.Background(), []domain.FeatureVector{{100, 40}, {101, 110}})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0}, out)
	assert.Equal(t, "logistic", m.Kind())
}

func TestModel_PredictProba(t *testing.T) {
	m, err := New("lithology", []float64{1}, 0)
	require.NoError(t, err)

	probs, err := m.PredictProba([]domain.FeatureVector{{0}})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, probs[0], 1e-12)
}

func TestWithThreshold(t *testing.T) {
	m, err := New("lithology", []float64{1}, 0, WithThreshold(0.9))
	require.NoError(t, err)
	assert.Equal(t, 0.9, m.Threshold())

	out, err := m.Predict(context.Background(), []domain.FeatureVector{{1}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, out)

	m, err = New("lithology", []float64{1}, 0, WithThreshold(1.5))
	require.NoError(t, err)
	assert.Equal(t, DefaultThreshold, m.Threshold())
}

func TestModel_ShapeMismatch(t *testing.T) {
	m, err := New("lithology", []float64{1, 1}, 0)
	require.NoError(t, err)

	_, err = m.Predict(context.Background(), []domain.FeatureVector{{1, 2, 3}})
	assert.Error(t, err)
}
