package driven

import (
	"io"

	"github.com/custodia-labs/litholog/internal/core/domain"
)

// TableReader parses a row-oriented table with a header row.
type TableReader interface {
	// Read returns the raw header labels and the data rows.
	Read(r io.Reader) (header []string, rows [][]string, err error)
}

// Exporter serialises an annotated dataset.
type Exporter interface {
	// Export writes the given columns of every record to w.
	Export(w io.Writer, ds *domain.AnnotatedDataset, columns []string) error
}
