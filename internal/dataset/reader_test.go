package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/elong0527/demo-go-esub/internal/errors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adsl.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeTempCSV(t, "SubjectID,TreatmentGroupPlanned,AGE\n01-001,Placebo,34\n01-002,Drug,41\n")

	ds, err := ReadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"SubjectID", "TreatmentGroupPlanned", "AGE"}, ds.Columns())
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, "Placebo", ds.Value(0, "TreatmentGroupPlanned"))
	assert.Equal(t, "41", ds.Value(1, "AGE"))
}

func TestReadCSV_ShortRowsPadded(t *testing.T) {
	path := writeTempCSV(t, "SubjectID,AGE,SEX\n01-001,34\n")

	ds, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, "", ds.Value(0, "SEX"))
}

func TestReadCSV_BOMHeader(t *testing.T) {
	path := writeTempCSV(t, "\uFEFFSubjectID,AGE\n01-001,34\n")

	ds, err := ReadCSV(path)
	require.NoError(t, err)
	assert.True(t, ds.HasColumn("SubjectID"))
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeStorage, appErr.Type)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adae.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"SubjectID", "EventTerm"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"01-001", "HEADACHE"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"01-002", "NAUSEA"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := ReadXLSX(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"SubjectID", "EventTerm"}, ds.Columns())
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, "NAUSEA", ds.Value(1, "EventTerm"))
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	_, err := ReadFile("adsl.sas7bdat")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeValidation, appErr.Type)
}
