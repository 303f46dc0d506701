package csvlog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/litholog/internal/core/domain"
)

func annotated() *domain.AnnotatedDataset {
	recs := []domain.Record{
		{Depth: 100, GammaRay: 50, Density: 2.25, Lithology: "Sandstone", Raw: map[string]string{"DEPTH": "100", "GR": "50", "ZONE": "A"}},
		{Depth: 101, GammaRay: 55, Density: 2.5, Lithology: "Shale", Raw: map[string]string{"DEPTH": "101", "GR": "55", "ZONE": "A, lower"}},
	}
	return domain.NewAnnotatedDataset("run", "in.csv", domain.DensityImputed,
		[]string{"DEPTH", "GR", "RHOB", "Lithology_Predicted"},
		[]string{"DEPTH", "GR", "ZONE", "RHOB", "Lithology_Predicted"},
		recs)
}

func TestWriter_Export_AllColumnsWithBOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter().Export(&buf, annotated(), nil))

	want := "\ufeffDEPTH,GR,ZONE,RHOB,Lithology_Predicted\n" +
		"100,50,A,2.25,Sandstone\n" +
		"101,55,\"A, lower\",2.5,Shale\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_Export_DisplayColumnsWithoutBOM(t *testing.T) {
	ds := annotated()

	var buf bytes.Buffer
	require.NoError(t, NewWriter(WithoutBOM()).Export(&buf, ds, ds.DisplayColumns))

	assert.False(t, strings.HasPrefix(buf.String(), "\ufeff"))
	assert.Equal(t, "DEPTH,GR,RHOB,Lithology_Predicted\n100,50,2.25,Sandstone\n101,55,2.5,Shale\n", buf.String())
}

func TestWriter_RoundTripsThroughReader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter().Export(&buf, annotated(), nil))

	header, rows, err := NewReader().Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, "DEPTH", header[0])
	assert.Len(t, rows, 2)
}

func TestWriter_Export_Nil(t *testing.T) {
	assert.Error(t, NewWriter().Export(&bytes.Buffer{}, nil, nil))
}

func TestWriter_ExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "well_annotated.csv")
	require.NoError(t, NewWriter().ExportFile(path, annotated(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\ufeff")))
}

func TestWriter_ExportFile_FailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "well_annotated.csv")

	assert.Error(t, NewWriter().ExportFile(path, nil, nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriter_ExportFile_FailureKeepsPreviousExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "well_annotated.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0600))

	assert.Error(t, NewWriter().ExportFile(path, nil, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}
