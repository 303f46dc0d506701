package csvlog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/litholog/internal/core/domain"
	"github.com/custodia-labs/litholog/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.TableReader = (*Reader)(nil)

// utf8BOM is the byte order mark spreadsheet tools write and expect.
const utf8BOM = "\ufeff"

// Reader parses a CSV table with a header row.
type Reader struct {
	comma rune
}

// ReaderOption configures the reader.
type ReaderOption func(*Reader)

// WithComma sets the field delimiter.
func WithComma(r rune) ReaderOption {
	return func(rd *Reader) {
		if r != 0 {
			rd.comma = r
		}
	}
}

// NewReader creates a CSV reader.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{comma: ','}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read returns the header labels as written and every data row.
// A leading byte order mark is stripped. Rows must match the header width.
func (r *Reader) Read(in io.Reader) ([]string, [][]string, error) {
	br := bufio.NewReader(in)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.Comma = r.comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: empty table", domain.ErrInvalidInput)
		}
		return nil, nil, fmt.Errorf("%w: reading header: %v", domain.ErrInvalidInput, err)
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// ReadFile reads a table from a file path.
func (r *Reader) ReadFile(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return r.Read(f)
}
