package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Canonical curve and column names after header normalisation.
const (
	// CurveDepth is the measured depth index.
	CurveDepth = "DEPTH"

	// CurveGammaRay is the gamma ray curve.
	CurveGammaRay = "GR"

	// CurveDensity is the bulk density curve, the only imputable curve.
	CurveDensity = "RHOB"

	// ColumnLithology is the output column holding predicted labels.
	ColumnLithology = "Lithology_Predicted"
)

// DensitySource records where a dataset's density values came from.
type DensitySource string

const (
	// DensityMeasured means RHOB was present in the input.
	DensityMeasured DensitySource = "measured"

	// DensityImputed means RHOB was synthesized by the regression predictor.
	DensityImputed DensitySource = "imputed"
)

// Record is one depth sample of a well log.
type Record struct {
	// Depth is required and always finite.
	Depth float64

	// GammaRay is required and always finite.
	GammaRay float64

	// Density is NaN when the cell was blank or the curve has not been
	// imputed yet. Presence is tracked per dataset, not per record.
	Density float64

	// Lithology is empty until the classifier stage runs.
	Lithology string

	// Raw holds the original cell text for every input column,
	// keyed by normalised column name.
	Raw map[string]string
}

// Value returns the display text of a column for this record.
// Original cells are returned verbatim; computed values are formatted.
func (r Record) Value(column string) string {
	switch column {
	case ColumnLithology:
		return r.Lithology
	case CurveDensity:
		if raw, ok := r.Raw[column]; ok {
			return raw
		}
		if math.IsNaN(r.Density) {
			return ""
		}
		return strconv.FormatFloat(r.Density, 'f', -1, 64)
	case CurveDepth:
		if raw, ok := r.Raw[column]; ok {
			return raw
		}
		return strconv.FormatFloat(r.Depth, 'f', -1, 64)
	case CurveGammaRay:
		if raw, ok := r.Raw[column]; ok {
			return raw
		}
		return strconv.FormatFloat(r.GammaRay, 'f', -1, 64)
	default:
		return r.Raw[column]
	}
}

// Curve returns the numeric value of a curve for this record.
// The boolean is false when the value is missing or not numeric.
func (r Record) Curve(name string) (float64, bool) {
	switch name {
	case CurveDepth:
		return r.Depth, true
	case CurveGammaRay:
		return r.GammaRay, true
	case CurveDensity:
		return r.Density, !math.IsNaN(r.Density)
	}
	raw, ok := r.Raw[name]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Dataset is an ordered sequence of records from a single input table.
// Order is preserved and duplicate depths are kept.
type Dataset struct {
	// Columns is the normalised header in input order. Stages append the
	// columns they add.
	Columns []string

	Records []Record

	// DensitySource is set by the completion stage.
	DensitySource DensitySource
}

// NewDataset builds a dataset from a normalised header and raw rows.
// DEPTH and GR must be present as columns and finite in every row.
func NewDataset(columns []string, rows [][]string) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidInput, c)
		}
		index[c] = i
	}

	var missing []string
	for _, c := range []string{CurveDepth, CurveGammaRay} {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	ds := &Dataset{
		Columns: append([]string(nil), columns...),
		Records: make([]Record, 0, len(rows)),
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrInvalidInput, i+1, len(row), len(columns))
		}

		rec := Record{
			Density: math.NaN(),
			Raw:     make(map[string]string, len(columns)),
		}
		for j, c := range columns {
			rec.Raw[c] = row[j]
		}

		var err error
		if rec.Depth, err = parseRequired(rec.Raw[CurveDepth], i+1, CurveDepth); err != nil {
			return nil, err
		}
		if rec.GammaRay, err = parseRequired(rec.Raw[CurveGammaRay], i+1, CurveGammaRay); err != nil {
			return nil, err
		}
		if raw, ok := rec.Raw[CurveDensity]; ok && strings.TrimSpace(raw) != "" {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, &SchemaError{Row: i + 1, Curve: CurveDensity, Reason: fmt.Sprintf("not a number: %q", raw)}
			}
			rec.Density = v
		}

		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

func parseRequired(raw string, row int, curve string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &SchemaError{Row: row, Curve: curve, Reason: "value is missing"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &SchemaError{Row: row, Curve: curve, Reason: fmt.Sprintf("not a number: %q", raw)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &SchemaError{Row: row, Curve: curve, Reason: "value is not finite"}
	}
	return v, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// HasCurve reports whether the named column is present in the dataset.
// This is a curve-level check; individual cells may still be blank.
func (d *Dataset) HasCurve(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the header if it is not already present.
func (d *Dataset) AddColumn(name string) {
	if !d.HasCurve(name) {
		d.Columns = append(d.Columns, name)
	}
}
