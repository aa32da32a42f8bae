package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/elong0527/demo-go-esub/internal/errors"
)

// ReadCSV reads a dataset from a CSV file. The first row is the header and
// becomes the column list; every following row becomes one record. Short rows
// are padded with empty values.
func ReadCSV(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, apperrors.NewStorageError(fmt.Sprintf("failed to open dataset file %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Dataset{}, apperrors.NewParsingError(fmt.Sprintf("failed to parse CSV file %s", path), err)
	}
	if len(records) == 0 {
		return Dataset{}, apperrors.NewParsingError(fmt.Sprintf("dataset file %s has no header row", path), nil)
	}

	header := trimAll(records[0])
	// Strip a UTF-8 BOM if the producer wrote one
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, rowFromRecord(header, record))
	}

	return New(header, rows), nil
}

// ReadXLSX reads a dataset from an Excel workbook. When sheet is empty the
// first sheet of the workbook is used.
func ReadXLSX(path, sheet string) (Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Dataset{}, apperrors.NewStorageError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Dataset{}, apperrors.NewParsingError(fmt.Sprintf("workbook %s has no sheets", path), nil)
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return Dataset{}, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %s of %s", sheet, path), err)
	}
	if len(records) == 0 {
		return Dataset{}, apperrors.NewParsingError(fmt.Sprintf("sheet %s of %s has no header row", sheet, path), nil)
	}

	header := trimAll(records[0])
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, rowFromRecord(header, record))
	}

	return New(header, rows), nil
}

// ReadFile reads a dataset, dispatching on the file extension. Supported
// extensions are .csv and .xlsx.
func ReadFile(path string) (Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path, "")
	default:
		return Dataset{}, apperrors.NewValidationError(fmt.Sprintf("unsupported dataset file type: %s", path))
	}
}

func rowFromRecord(header, record []string) Row {
	row := make(Row, len(header))
	for i, col := range header {
		if i < len(record) {
			row[col] = strings.TrimSpace(record[i])
		} else {
			row[col] = ""
		}
	}
	return row
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
