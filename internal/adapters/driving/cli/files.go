package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/litholog/internal/core/domain"
)

// annotatedSuffix is appended to the input stem to name exported files.
const annotatedSuffix = "_annotated"

// stdinName selects standard input as the source table.
const stdinName = "-"

// readTable reads a table from path, or from stdin when path is "-".
func readTable(path string, stdin io.Reader) (header []string, rows [][]string, err error) {
	var r io.Reader
	if path == stdinName {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	header, rows, err = tableReader.Read(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return header, rows, nil
}

// completeFile reads and completes a single table.
func completeFile(ctx context.Context, path string, stdin io.Reader) (*domain.AnnotatedDataset, error) {
	header, rows, err := readTable(path, stdin)
	if err != nil {
		return nil, err
	}
	return completionService.CompleteTable(ctx, sourceName(path), header, rows)
}

// exportFile writes ds to path, creating parent directories. Output goes
// to a hidden temporary file that is renamed into place on success.
func exportFile(path string, ds *domain.AnnotatedDataset, columns []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer os.Remove(f.Name()) //nolint:errcheck

	if err := exporter.Export(f, ds, columns); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// annotatedPath names the export of input inside dir. An empty dir keeps
// the input's directory.
func annotatedPath(input, dir string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, stem+annotatedSuffix+".csv")
}

// isAnnotated reports whether path looks like one of our exports.
func isAnnotated(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(strings.TrimSuffix(base, filepath.Ext(base)), annotatedSuffix)
}

func sourceName(path string) string {
	if path == stdinName {
		return "stdin"
	}
	return filepath.Base(path)
}

// exportColumns selects the columns written to files.
func exportColumns(ds *domain.AnnotatedDataset, displayOnly bool) []string {
	if displayOnly {
		return ds.DisplayColumns
	}
	return ds.AllColumns
}
