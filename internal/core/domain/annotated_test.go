package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotatedDataset_RecordIsCopy(t *testing.T) {
	recs := []Record{{Depth: 100, GammaRay: 50, Density: 2.4, Raw: map[string]string{"DEPTH": "100"}}}
	a := NewAnnotatedDataset("run", "in.csv", DensityMeasured, nil, []string{"DEPTH"}, recs)

	r := a.Record(0)
	r.Raw["DEPTH"] = "999"

	assert.Equal(t, "100", a.Value(0, "DEPTH"))
}

func TestAnnotatedDataset_Series(t *testing.T) {
	recs := []Record{
		{Depth: 100, GammaRay: 50, Density: 2.4},
		{Depth: 101, GammaRay: 55, Density: math.NaN()},
	}
	a := NewAnnotatedDataset("run", "", DensityMeasured, nil, nil, recs)

	values, ok := a.Series(CurveDensity)
	assert.Equal(t, 2.4, values[0])
	assert.Equal(t, []bool{true, false}, ok)
}

func TestAnnotatedDataset_Rows(t *testing.T) {
	recs := []Record{
		{Depth: 100, GammaRay: 50, Density: 2.5, Lithology: "Shale", Raw: map[string]string{"DEPTH": "100", "GR": "50"}},
	}
	a := NewAnnotatedDataset("run", "", DensityImputed, nil, nil, recs)

	rows := a.Rows([]string{CurveDepth, CurveGammaRay, CurveDensity, ColumnLithology})
	assert.Equal(t, [][]string{{"100", "50", "2.5", "Shale"}}, rows)
	assert.Equal(t, []string{"Shale"}, a.Lithologies())
}
