package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elong0527/demo-go-esub/internal/dataset"
	apperrors "github.com/elong0527/demo-go-esub/internal/errors"
	"github.com/elong0527/demo-go-esub/pkg/contracts/domain"
)

func TestPopulation(t *testing.T) {
	b, err := NewBuilder(nil, testGroups)
	require.NoError(t, err)

	rows := []dataset.Row{
		subjectRow("01", "Placebo", "30", "F"),
		subjectRow("02", "Placebo", "40", "M"),
		subjectRow("03", "Drug High Dose", "50", "F"),
	}
	// Subject 02 is randomized but excluded from the efficacy population
	rows[1][domain.ColEfficacyFlag] = "N"

	table, err := b.Population(dataset.New(adslColumns(), rows))
	require.NoError(t, err)

	assert.Equal(t, "Population", table.LabelTitle)
	require.Len(t, table.Rows, 4)

	assert.Equal(t, labelPopulation, table.Rows[0].Label)
	assert.Equal(t, []string{"2", "1"}, table.Rows[0].Values)

	assert.Equal(t, labelITT, table.Rows[1].Label)
	assert.Equal(t, []string{"2 (100.0)", "1 (100.0)"}, table.Rows[1].Values)

	assert.Equal(t, labelEfficacy, table.Rows[2].Label)
	assert.Equal(t, []string{"1 (50.0)", "1 (100.0)"}, table.Rows[2].Values)

	assert.Equal(t, labelSafety, table.Rows[3].Label)
	assert.Equal(t, []string{"2 (100.0)", "1 (100.0)"}, table.Rows[3].Values)
}

func TestPopulation_EmptyGroup(t *testing.T) {
	b, err := NewBuilder(nil, []string{"Placebo", "Drug Low Dose"})
	require.NoError(t, err)

	table, err := b.Population(dataset.New(adslColumns(), []dataset.Row{
		subjectRow("01", "Placebo", "30", "F"),
	}))
	require.NoError(t, err)

	// No subject was randomized to the low-dose arm; its column still
	// appears, with a zero count and zero percentages.
	require.Len(t, table.Rows, 4)
	assert.Equal(t, []string{"1", "0"}, table.Rows[0].Values)
	assert.Equal(t, []string{"1 (100.0)", "0 (0.0)"}, table.Rows[1].Values)
}

func TestPopulation_MissingFlagColumn(t *testing.T) {
	b, err := NewBuilder(nil, testGroups)
	require.NoError(t, err)

	cols := []string{domain.ColSubjectID, domain.ColTreatmentGroupPlanned, domain.ColSafetyFlag}
	table, err := b.Population(dataset.New(cols, []dataset.Row{
		{domain.ColSubjectID: "01", domain.ColTreatmentGroupPlanned: "Placebo", domain.ColSafetyFlag: "Y"},
	}))
	require.NoError(t, err)

	// ITT and efficacy flag columns are absent, so only the total and
	// safety rows appear.
	require.Len(t, table.Rows, 2)
	assert.Equal(t, labelPopulation, table.Rows[0].Label)
	assert.Equal(t, labelSafety, table.Rows[1].Label)
}

func TestPopulation_MissingGroupColumn(t *testing.T) {
	b, err := NewBuilder(nil, testGroups)
	require.NoError(t, err)

	ds := dataset.New([]string{domain.ColSubjectID}, []dataset.Row{{domain.ColSubjectID: "01"}})
	_, err = b.Population(ds)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeConfig, appErr.Type)
}
