package summary

import (
	"fmt"
	"strconv"
)

// NoDataDisplay is the reserved display value for "no data for this group".
// It is the rendering of the CellNoData state, never something callers should
// compare strings against.
const NoDataDisplay = "0 (0.0%)"

// CellState distinguishes the three kinds of table cell content
type CellState int

const (
	// CellNoData marks a group the statistics carry no row for at all
	CellNoData CellState = iota
	// CellZero marks a genuine zero count with a real percentage base
	CellZero
	// CellValue marks a non-zero observed value
	CellValue
)

// Cell is one formatted table value. Suppression decisions (blanking the
// default in continuous rows, rendering "0" in hierarchical count cells) are
// made on State, not by matching Display strings.
type Cell struct {
	State   CellState
	Display string
}

// NoDataCell returns the cell used when a lookup finds no data for a group
func NoDataCell() Cell {
	return Cell{State: CellNoData}
}

// Render returns the display string for count/percentage contexts; the
// no-data state renders as the reserved default so tables are always fully
// populated.
func (c Cell) Render() string {
	if c.State == CellNoData {
		return NoDataDisplay
	}
	return c.Display
}

// RenderOrBlank returns the display string with the no-data state blanked.
// Continuous-variable rows use this: a header over no data shows nothing, not
// "0 (0.0%)".
func (c Cell) RenderOrBlank() string {
	if c.State == CellNoData {
		return ""
	}
	return c.Display
}

// RenderCount returns the display string for plain count contexts, where a
// missing group renders as "0".
func (c Cell) RenderCount() string {
	if c.State == CellNoData {
		return "0"
	}
	return c.Display
}

// Percent computes round(100*n/denominator, 1). A zero denominator reports
// 0.0; division by zero never surfaces as an error or a non-numeric token.
func Percent(n, denominator int) float64 {
	if denominator == 0 {
		return 0.0
	}
	return round1(100.0 * float64(n) / float64(denominator))
}

// FormatMeanSD renders the mean_sd template, e.g. "34.2 (5.61)"
func FormatMeanSD(mean, sd float64) string {
	return fmt.Sprintf("%.1f (%.2f)", mean, sd)
}

// FormatMedianRange renders the median_range template, e.g. "33.0 [18, 65]".
// Min and max print unrounded; the median carries one decimal.
func FormatMedianRange(median, min, max float64) string {
	return fmt.Sprintf("%.1f [%s, %s]", median, formatNumber(min), formatNumber(max))
}

// FormatCountPct renders the count_pct template, e.g. "12 (34.5%)"
func FormatCountPct(n, denominator int) string {
	return fmt.Sprintf("%d (%.1f%%)", n, Percent(n, denominator))
}

// FormatCountPctPlain renders the parenthesized count template used in AE
// tables, e.g. "7 (14.0)" with no percent sign.
func FormatCountPctPlain(n, denominator int) string {
	return fmt.Sprintf("%d (%.1f)", n, Percent(n, denominator))
}

// FormatCount renders the count_only template, e.g. "48"
func FormatCount(n int) string {
	return strconv.Itoa(n)
}

// MeanSDCell builds the formatted mean (SD) cell for a group's statistics
func MeanSDCell(stat GroupStat) Cell {
	return Cell{State: CellValue, Display: FormatMeanSD(stat.Mean, stat.SD)}
}

// MedianRangeCell builds the formatted median [min, max] cell
func MedianRangeCell(stat GroupStat) Cell {
	return Cell{State: CellValue, Display: FormatMedianRange(stat.Median, stat.Min, stat.Max)}
}

// CountPctCell builds an "n (pct%)" cell against the group's population
// denominator
func CountPctCell(n, denominator int) Cell {
	return Cell{State: countState(n), Display: FormatCountPct(n, denominator)}
}

// CountPctPlainCell builds an "n (pct)" cell for AE tables
func CountPctPlainCell(n, denominator int) Cell {
	return Cell{State: countState(n), Display: FormatCountPctPlain(n, denominator)}
}

// CountCell builds a count-only cell
func CountCell(n int) Cell {
	return Cell{State: countState(n), Display: FormatCount(n)}
}

func countState(n int) CellState {
	if n == 0 {
		return CellZero
	}
	return CellValue
}

// formatNumber renders a float without a fixed precision: integral values
// print without a decimal point ("65"), fractional ones keep their digits.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
