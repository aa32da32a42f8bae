package exporter

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/elong0527/demo-go-esub/internal/errors"
	"github.com/elong0527/demo-go-esub/internal/summary"
)

// ExcelWriter writes a report's tables into one xlsx workbook, one sheet
// per table
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates an xlsx workbook writer
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// WriteWorkbook writes the tables to path. Sheets are named after the
// tables and appear in table order; at least one table is required because
// a workbook cannot be empty.
func (w *ExcelWriter) WriteWorkbook(path string, tables []summary.Table) error {
	if len(tables) == 0 {
		return apperrors.NewValidationError("no tables to export")
	}

	w.logger.Info("writing table workbook",
		slog.String("path", path),
		slog.Int("table_count", len(tables)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory for "+path, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, table := range tables {
		if err := w.writeSheet(f, i, table); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("failed to save workbook "+path, err)
	}
	return nil
}

func (w *ExcelWriter) writeSheet(f *excelize.File, index int, table summary.Table) error {
	sheet := table.Name

	// The fresh workbook comes with one default sheet; rename it for the
	// first table and add sheets for the rest.
	if index == 0 {
		if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
			return apperrors.NewStorageError("failed to rename sheet "+sheet, err)
		}
	} else {
		if _, err := f.NewSheet(sheet); err != nil {
			return apperrors.NewStorageError("failed to create sheet "+sheet, err)
		}
	}

	for r, record := range table.Grid() {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return apperrors.NewStorageError("failed to address row in sheet "+sheet, err)
		}
		row := make([]interface{}, len(record))
		for i, v := range record {
			row[i] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return apperrors.NewStorageError("failed to write row to sheet "+sheet, err)
		}
	}
	return nil
}
