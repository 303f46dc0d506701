package domain

// AnnotatedDataset is the completed, labelled log handed to downstream
// collaborators. It is read-only: accessors return copies.
type AnnotatedDataset struct {
	RunID          string
	Source         string
	DensitySource  DensitySource
	DisplayColumns []string
	AllColumns     []string

	records []Record
}

// NewAnnotatedDataset wraps records that the caller must no longer mutate.
func NewAnnotatedDataset(runID, source string, density DensitySource, display, all []string, records []Record) *AnnotatedDataset {
	return &AnnotatedDataset{
		RunID:          runID,
		Source:         source,
		DensitySource:  density,
		DisplayColumns: display,
		AllColumns:     all,
		records:        records,
	}
}

// Len returns the number of records.
func (a *AnnotatedDataset) Len() int {
	return len(a.records)
}

// Record returns a copy of record i.
func (a *AnnotatedDataset) Record(i int) Record {
	r := a.records[i]
	raw := make(map[string]string, len(r.Raw))
	for k, v := range r.Raw {
		raw[k] = v
	}
	r.Raw = raw
	return r
}

// Value returns the text of column for record i.
func (a *AnnotatedDataset) Value(i int, column string) string {
	return a.records[i].Value(column)
}

// Row returns the text of the given columns for record i.
func (a *AnnotatedDataset) Row(i int, columns []string) []string {
	row := make([]string, len(columns))
	for j, c := range columns {
		row[j] = a.records[i].Value(c)
	}
	return row
}

// Rows returns the given columns for every record.
func (a *AnnotatedDataset) Rows(columns []string) [][]string {
	rows := make([][]string, len(a.records))
	for i := range a.records {
		rows[i] = a.Row(i, columns)
	}
	return rows
}

// Series returns a curve's numeric values in record order. Missing or
// non-numeric values are reported in ok as false.
func (a *AnnotatedDataset) Series(curve string) (values []float64, ok []bool) {
	values = make([]float64, len(a.records))
	ok = make([]bool, len(a.records))
	for i, r := range a.records {
		values[i], ok[i] = r.Curve(curve)
	}
	return values, ok
}

// Lithologies returns the predicted label per record.
func (a *AnnotatedDataset) Lithologies() []string {
	out := make([]string, len(a.records))
	for i, r := range a.records {
		out[i] = r.Lithology
	}
	return out
}
