// Package summary is the aggregation-and-table-assembly engine behind the
// clinical summary tables.
//
// # Architecture
//
// The package is organized into four stages:
//
// 1. Aggregation: grouped statistics (counts, mean/SD, median/min/max,
// unique-subject counts) over row-level records
// 2. Zero-fill: restoring treatment-group and category combinations that
// have no observations, so no column or row is ever silently dropped
// 3. Formatting: fixed-precision display strings ("34.2 (5.61)",
// "12 (34.5%)") carried in a tri-state cell that distinguishes "no data"
// from a genuine zero
// 4. Assembly: sections (continuous, categorical, hierarchical) pivoted into
// a table whose columns follow the report's treatment-group order
//
// # Data Flow
//
//	dataset → aggregate → zero-fill → format → assemble → Table
//
// Every stage consumes immutable inputs and returns new values; the output
// table is identical regardless of the order sections are computed in.
//
// # Error Handling
//
// A requested column that is absent from the dataset is a fatal
// configuration error. Missing data inside a present column is not: empty
// groups zero-fill, and a zero denominator reports a 0.0 percentage rather
// than failing.
package summary
