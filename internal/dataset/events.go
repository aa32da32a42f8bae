package dataset

import (
	"fmt"

	apperrors "github.com/elong0527/demo-go-esub/internal/errors"
	"github.com/elong0527/demo-go-esub/pkg/contracts/domain"
)

// requiredEventColumns are the event-level columns every adverse-event
// dataset must carry. The severity/relatedness/outcome/action columns are
// optional; missing ones read as empty and simply never match a predicate.
var requiredEventColumns = []string{
	domain.ColSubjectID,
	domain.ColTreatmentGroupActual,
	domain.ColEventTerm,
	domain.ColOrganSystemClass,
}

// AdverseEvents converts an event-level dataset into typed records. The
// dataset must satisfy the event-level wire schema; a missing required column
// is a fatal configuration error.
func AdverseEvents(ds Dataset) ([]domain.AdverseEvent, error) {
	for _, col := range requiredEventColumns {
		if !ds.HasColumn(col) {
			return nil, apperrors.NewConfigError(
				fmt.Sprintf("event dataset is missing required column %s", col), nil)
		}
	}

	events := make([]domain.AdverseEvent, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		events = append(events, domain.AdverseEvent{
			SubjectID:        row[domain.ColSubjectID],
			TreatmentGroup:   row[domain.ColTreatmentGroupActual],
			EventTerm:        row[domain.ColEventTerm],
			OrganSystemClass: row[domain.ColOrganSystemClass],
			Serious:          row[domain.ColSerious],
			Relatedness:      row[domain.ColRelatedness],
			Outcome:          row[domain.ColOutcome],
			ActionTaken:      row[domain.ColActionTaken],
		})
	}
	return events, nil
}
