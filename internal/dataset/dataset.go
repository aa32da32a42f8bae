package dataset

// Row is one record of a dataset. Values are kept as strings; numeric
// interpretation happens at aggregation time.
type Row map[string]string

// Dataset is an ordered, read-only collection of homogeneous rows with a
// stable column list. All transformations return a new Dataset; the input is
// never mutated.
type Dataset struct {
	columns []string
	rows    []Row
}

// New creates a dataset from a column list and rows. Rows are used as-is;
// callers must not modify them afterwards.
func New(columns []string, rows []Row) Dataset {
	return Dataset{columns: columns, rows: rows}
}

// Len returns the number of rows
func (d Dataset) Len() int {
	return len(d.rows)
}

// Columns returns the column names in dataset order
func (d Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// HasColumn reports whether the dataset carries the named column
func (d Dataset) HasColumn(name string) bool {
	for _, c := range d.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Row returns the i-th row
func (d Dataset) Row(i int) Row {
	return d.rows[i]
}

// Value returns the value of the named column in the i-th row, or the empty
// string when the row does not carry it.
func (d Dataset) Value(i int, col string) string {
	return d.rows[i][col]
}

// Filter returns a new dataset containing the rows for which pred is true.
// Row order is preserved.
func (d Dataset) Filter(pred func(Row) bool) Dataset {
	filtered := make([]Row, 0, len(d.rows))
	for _, row := range d.rows {
		if pred(row) {
			filtered = append(filtered, row)
		}
	}
	return Dataset{columns: d.columns, rows: filtered}
}

// UniqueStrings returns the distinct non-empty values of a column in
// first-occurrence order. This ordering is what category rows in summary
// tables follow, independent of any grouping or sorting applied later.
func (d Dataset) UniqueStrings(col string) []string {
	seen := make(map[string]bool, len(d.rows))
	values := make([]string, 0)
	for _, row := range d.rows {
		v := row[col]
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
