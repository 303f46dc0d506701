package csvlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.Exporter = (*Writer)(nil)

// Writer serialises annotated datasets as CSV.
type Writer struct {
	bom bool
}

// WriterOption configures the writer.
type WriterOption func(*Writer)

// WithoutBOM omits the leading byte order mark.
func WithoutBOM() WriterOption {
	return func(w *Writer) {
		w.bom = false
	}
}

// NewWriter creates a CSV writer. Output is UTF-8 with a byte order mark
// unless WithoutBOM is given.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{bom: true}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Export writes a header row of columns followed by one row per record,
// in record order. A nil columns slice exports every column.
func (w *Writer) Export(out io.Writer, ds *domain.AnnotatedDataset, columns []string) error {
	if ds == nil {
		return fmt.Errorf("%w: dataset is nil", domain.ErrInvalidInput)
	}
	if columns == nil {
		columns = ds.AllColumns
	}

	if w.bom {
		if _, err := io.WriteString(out, utf8BOM); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(out)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for i := 0; i < ds.Len(); i++ {
		if err := cw.Write(ds.Row(i, columns)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile writes the dataset to path, creating parent directories.
// The file is written beside path and renamed into place, so a failed
// export leaves no partial file behind.
func (w *Writer) ExportFile(path string, ds *domain.AnnotatedDataset, columns []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if err := w.Export(tmp, ds, columns); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
