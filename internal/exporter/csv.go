package exporter

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/elong0527/demo-go-esub/internal/errors"
	"github.com/elong0527/demo-go-esub/internal/summary"
)

// utf8BOM makes Excel recognize the files as UTF-8
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter writes summary tables as CSV files, one file per table
type CSVWriter struct {
	logger *slog.Logger
	bom    bool
}

// NewCSVWriter creates a CSV writer. When bom is true each file starts with
// a UTF-8 byte order mark for Excel compatibility.
func NewCSVWriter(logger *slog.Logger, bom bool) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger, bom: bom}
}

// WriteTable writes one table to dir as <table name>.csv and returns the
// file path. The first row is the header, then the rendered grid rows with
// indentation folded into the label column.
func (w *CSVWriter) WriteTable(dir string, table summary.Table) (string, error) {
	path := filepath.Join(dir, table.Name+".csv")

	w.logger.Info("writing table CSV",
		slog.String("table", table.Name),
		slog.String("path", path),
		slog.Int("row_count", len(table.Rows)))

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", apperrors.NewStorageError("failed to create output directory "+dir, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", apperrors.NewStorageError("failed to create CSV file "+path, err)
	}
	defer file.Close()

	if w.bom {
		if _, err := file.Write(utf8BOM); err != nil {
			return "", apperrors.NewStorageError("failed to write BOM to "+path, err)
		}
	}

	writer := csv.NewWriter(file)
	for _, record := range table.Grid() {
		if err := writer.Write(record); err != nil {
			return "", apperrors.NewStorageError("failed to write CSV record to "+path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", apperrors.NewStorageError("failed to flush CSV file "+path, err)
	}
	return path, nil
}

// WriteAll writes every table to dir and returns the file paths in table
// order
func (w *CSVWriter) WriteAll(dir string, tables []summary.Table) ([]string, error) {
	paths := make([]string, 0, len(tables))
	for _, table := range tables {
		path, err := w.WriteTable(dir, table)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
