// Package exporter writes assembled summary tables to disk.
//
// Three writers cover the supported output formats:
//
// CSVWriter: one CSV file per table, with an optional UTF-8 BOM so the
// files open cleanly in Excel.
//
// ExcelWriter: all tables of a report in one workbook, one sheet per table.
//
// JSONWriter: all tables in one JSON document with a metadata envelope
// (generation timestamp, table count, format tag).
//
// Every writer creates missing output directories and reports failures as
// storage errors carrying the offending path.
package exporter
