package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/litholog/internal/core/domain"
)

func TestAnnotatedPath(t *testing.T) {
	tests := []struct {
		input string
		dir   string
		want  string
	}{
		{"logs/well.csv", "", filepath.Join("logs", "well_annotated.csv")},
		{"logs/well.CSV", "out", filepath.Join("out", "well_annotated.csv")},
		{"well.txt", "", "well_annotated.csv"},
		{"/data/a.b.csv", "/tmp", filepath.Join("/tmp", "a.b_annotated.csv")},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, annotatedPath(tt.input, tt.dir))
		})
	}
}

func TestIsAnnotated(t *testing.T) {
	assert.True(t, isAnnotated("well_annotated.csv"))
	assert.True(t, isAnnotated("/x/well_annotated.CSV"))
	assert.False(t, isAnnotated("well.csv"))
	assert.False(t, isAnnotated("annotated_well.csv"))
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "stdin", sourceName("-"))
	assert.Equal(t, "well.csv", sourceName("/data/logs/well.csv"))
}

// partialExporter writes part of a row and then fails.
type partialExporter struct{}

func (partialExporter) Export(w io.Writer, _ *domain.AnnotatedDataset, _ []string) error {
	if _, err := io.WriteString(w, "DEPTH,GR\n1000,"); err != nil {
		return err
	}
	return errors.New("disk full")
}

func TestExportFile_FailureLeavesNoFile(t *testing.T) {
	original := exporter
	exporter = partialExporter{}
	defer func() { exporter = original }()

	dir := t.TempDir()
	path := filepath.Join(dir, "out", "well_annotated.csv")
	ds := domain.NewAnnotatedDataset("run", "well.csv", domain.DensityMeasured, nil, nil, nil)

	err := exportFile(path, ds, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	entries, err := os.ReadDir(filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
