package exporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/elong0527/demo-go-esub/internal/errors"
	"github.com/elong0527/demo-go-esub/internal/summary"
)

func testTable() summary.Table {
	return summary.Table{
		Name:       "population",
		LabelTitle: "Population",
		Groups:     []string{"Placebo", "Drug"},
		Rows: []summary.SummaryRow{
			{Label: "Participants in population", Values: []string{"2", "1"}},
			{Label: "Mean (SD)", Indent: 1, Values: []string{"35.0 (7.07)", "50.0 (0.00)"}},
		},
	}
}

func secondTable() summary.Table {
	return summary.Table{
		Name:       "ae_summary",
		LabelTitle: "Adverse Events",
		Groups:     []string{"Placebo", "Drug"},
		Rows: []summary.SummaryRow{
			{Label: "With any adverse event", Values: []string{"0 (0.0%)", "2 (20.0%)"}},
		},
	}
}

func TestCSVWriter_WriteTable(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(nil, true)

	path, err := w.WriteTable(dir, testTable())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "population.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, utf8BOM), "file must start with a UTF-8 BOM")

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Population", "Placebo", "Drug"}, records[0])
	assert.Equal(t, []string{"Participants in population", "2", "1"}, records[1])
	// Indented labels carry the two-space prefix in the label column
	assert.Equal(t, []string{"  Mean (SD)", "35.0 (7.07)", "50.0 (0.00)"}, records[2])
}

func TestCSVWriter_NoBOM(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(nil, false)

	path, err := w.WriteTable(dir, testTable())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, bytes.HasPrefix(data, utf8BOM))
}

func TestCSVWriter_WriteAll(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(nil, true)

	paths, err := w.WriteAll(dir, []summary.Table{testTable(), secondTable()})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.FileExists(t, filepath.Join(dir, "population.csv"))
	assert.FileExists(t, filepath.Join(dir, "ae_summary.csv"))
}

func TestCSVWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	w := NewCSVWriter(nil, false)

	_, err := w.WriteTable(dir, testTable())
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "population.csv"))
}

func TestExcelWriter_WriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.xlsx")
	w := NewExcelWriter(nil)

	err := w.WriteWorkbook(path, []summary.Table{testTable(), secondTable()})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"population", "ae_summary"}, f.GetSheetList())

	rows, err := f.GetRows("population")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Population", "Placebo", "Drug"}, rows[0])
	assert.Equal(t, []string{"Participants in population", "2", "1"}, rows[1])
}

func TestExcelWriter_NoTables(t *testing.T) {
	w := NewExcelWriter(nil)

	err := w.WriteWorkbook(filepath.Join(t.TempDir(), "tables.xlsx"), nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeValidation, appErr.Type)
}

func TestJSONWriter_WriteTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.json")
	w := NewJSONWriter(nil)
	w.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	err := w.WriteTables(path, []summary.Table{testTable(), secondTable()})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc jsonDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, jsonFormatTag, doc.Format)
	assert.Equal(t, "2025-06-01T12:00:00Z", doc.GeneratedAt)
	require.Len(t, doc.Tables, 2)
	assert.Equal(t, "population", doc.Tables[0].Name)
	assert.Equal(t, []string{"Placebo", "Drug"}, doc.Tables[0].Groups)
	require.Len(t, doc.Tables[0].Rows, 2)
	assert.Equal(t, 1, doc.Tables[0].Rows[1].Indent)
	assert.Equal(t, []string{"35.0 (7.07)", "50.0 (0.00)"}, doc.Tables[0].Rows[1].Values)
}
