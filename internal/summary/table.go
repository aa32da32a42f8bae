package summary

// SummaryRow is one row of an assembled table. Values is aligned with the
// table's Groups slice and always has exactly that length.
type SummaryRow struct {
	Label  string
	Indent int // 0 for headers and top-level rows, 1 for nested rows
	Values []string
}

// Table is the terminal artifact of the engine: an ordered row grid with a
// fixed column header. Groups carry the report's treatment-group order;
// nothing downstream may reorder them.
type Table struct {
	Name       string
	LabelTitle string // first column header, e.g. "Characteristic"
	Groups     []string
	Rows       []SummaryRow
}

// Header returns the column header: the label title followed by the
// treatment groups in report order.
func (t Table) Header() []string {
	header := make([]string, 0, len(t.Groups)+1)
	header = append(header, t.LabelTitle)
	header = append(header, t.Groups...)
	return header
}

// Grid returns the table as a rendered row/column grid including the header
// row. Indented labels carry a two-space prefix per level.
func (t Table) Grid() [][]string {
	grid := make([][]string, 0, len(t.Rows)+1)
	grid = append(grid, t.Header())
	for _, row := range t.Rows {
		line := make([]string, 0, len(row.Values)+1)
		label := row.Label
		for i := 0; i < row.Indent; i++ {
			label = "  " + label
		}
		line = append(line, label)
		line = append(line, row.Values...)
		grid = append(grid, line)
	}
	return grid
}

// GroupCells maps treatment group → formatted cell for one table row
type GroupCells map[string]Cell

// Cell looks up a group's cell, returning the no-data cell for groups the
// statistics carry nothing for. Lookups never fail; a table is always fully
// populated.
func (g GroupCells) Cell(group string) Cell {
	if c, ok := g[group]; ok {
		return c
	}
	return NoDataCell()
}

// Section is one block of an assembled table
type Section interface {
	appendRows(a *Assembler, t *Table)
}

// Assembler pivots formatted statistics into tables. The treatment-group
// order it is created with becomes the column order of every table it
// assembles.
type Assembler struct {
	groups []string
}

// NewAssembler creates an assembler for the report's treatment-group order
func NewAssembler(groups []string) *Assembler {
	out := make([]string, len(groups))
	copy(out, groups)
	return &Assembler{groups: out}
}

// Groups returns the treatment groups in report order
func (a *Assembler) Groups() []string {
	out := make([]string, len(a.groups))
	copy(out, a.groups)
	return out
}

// Assemble builds a table from the given sections. Rows appear in section
// order; columns always follow the assembler's group order.
func (a *Assembler) Assemble(name, labelTitle string, sections ...Section) Table {
	t := Table{Name: name, LabelTitle: labelTitle, Groups: a.Groups()}
	for _, s := range sections {
		s.appendRows(a, &t)
	}
	return t
}

// headerRow emits a label-only row with blank values
func (a *Assembler) headerRow(t *Table, label string) {
	t.Rows = append(t.Rows, SummaryRow{Label: label, Values: a.blankValues()})
}

func (a *Assembler) blankValues() []string {
	return make([]string, len(a.groups))
}

// ContinuousSection is a continuous-variable block: a header row followed by
// a Mean (SD) row and a Median [Min, Max] row. No-data cells render blank, a
// continuous row never shows the count default.
type ContinuousSection struct {
	Label       string
	MeanSD      GroupCells
	MedianRange GroupCells
}

func (s ContinuousSection) appendRows(a *Assembler, t *Table) {
	a.headerRow(t, s.Label)

	meanSD := make([]string, 0, len(a.groups))
	medianRange := make([]string, 0, len(a.groups))
	for _, g := range a.groups {
		meanSD = append(meanSD, s.MeanSD.Cell(g).RenderOrBlank())
		medianRange = append(medianRange, s.MedianRange.Cell(g).RenderOrBlank())
	}
	t.Rows = append(t.Rows, SummaryRow{Label: "Mean (SD)", Indent: 1, Values: meanSD})
	t.Rows = append(t.Rows, SummaryRow{Label: "Median [Min, Max]", Indent: 1, Values: medianRange})
}

// CategoricalSection is a categorical-variable block: a header row followed
// by one indented row per category. Categories keep their first-occurrence
// order from the source data; a category listed but absent from Cells was
// never observed for any group and is skipped entirely (distinct from
// zero-fill, which covers combinations that exist but count zero).
type CategoricalSection struct {
	Label      string
	Categories []string
	Cells      map[string]GroupCells
}

func (s CategoricalSection) appendRows(a *Assembler, t *Table) {
	a.headerRow(t, s.Label)

	for _, cat := range s.Categories {
		cells, ok := s.Cells[cat]
		if !ok {
			continue
		}
		values := make([]string, 0, len(a.groups))
		for _, g := range a.groups {
			values = append(values, cells.Cell(g).Render())
		}
		t.Rows = append(t.Rows, SummaryRow{Label: cat, Indent: 1, Values: values})
	}
}

// CountSection is a flat block of labelled count rows (the AE summary and
// population disposition shape). No-data cells render the reserved default.
type CountSection struct {
	Rows []CountRow
}

// CountRow is one labelled row of count cells
type CountRow struct {
	Label string
	Cells GroupCells
}

func (s CountSection) appendRows(a *Assembler, t *Table) {
	for _, row := range s.Rows {
		values := make([]string, 0, len(a.groups))
		for _, g := range a.groups {
			values = append(values, row.Cells.Cell(g).Render())
		}
		t.Rows = append(t.Rows, SummaryRow{Label: row.Label, Values: values})
	}
}

// HierarchicalSection is the AE-by-SOC shape: a population count row, a blank
// separator, then per organ system class a header row followed by indented
// term rows. Missing term × group combinations render "0".
type HierarchicalSection struct {
	PopulationLabel string
	Population      GroupCells
	Classes         []ClassGroup
}

// ClassGroup is one organ system class and its term rows, both already in
// display order (alphabetical).
type ClassGroup struct {
	Name  string
	Terms []TermRow
}

// TermRow is one adverse-event term's count cells
type TermRow struct {
	Name  string
	Cells GroupCells
}

func (s HierarchicalSection) appendRows(a *Assembler, t *Table) {
	population := make([]string, 0, len(a.groups))
	for _, g := range a.groups {
		population = append(population, s.Population.Cell(g).RenderCount())
	}
	t.Rows = append(t.Rows, SummaryRow{Label: s.PopulationLabel, Values: population})

	// Blank separator between the population row and the hierarchy
	t.Rows = append(t.Rows, SummaryRow{Values: a.blankValues()})

	for _, class := range s.Classes {
		a.headerRow(t, class.Name)
		for _, term := range class.Terms {
			values := make([]string, 0, len(a.groups))
			for _, g := range a.groups {
				values = append(values, term.Cells.Cell(g).RenderCount())
			}
			t.Rows = append(t.Rows, SummaryRow{Label: term.Name, Indent: 1, Values: values})
		}
	}
}
