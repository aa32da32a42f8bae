package reports

import (
	"log/slog"

	"github.com/elong0527/demo-go-esub/internal/dataset"
	"github.com/elong0527/demo-go-esub/internal/summary"
	"github.com/elong0527/demo-go-esub/pkg/contracts/domain"
)

// Row labels of the population disposition table
const (
	labelPopulation  = "Participants in population"
	labelITT         = "Participants included in ITT population"
	labelEfficacy    = "Participants included in efficacy population"
	labelSafety      = "Participants included in safety population"
	populationTitle  = "Population"
	characteristicID = "Characteristic"
)

// populationFlags lists the optional analysis populations in report order.
// A flag column absent from the dataset silently omits its row; that is not
// an error.
var populationFlags = []struct {
	label  string
	column string
}{
	{labelITT, domain.ColIntentToTreatFlag},
	{labelEfficacy, domain.ColEfficacyFlag},
	{labelSafety, domain.ColSafetyFlag},
}

// Population builds the population disposition table: every randomized
// participant, then one row per analysis population present in the dataset.
// The top row shows counts only; population rows show "n (pct)" against the
// all-participants denominator for each treatment group.
func (b *Builder) Population(adsl dataset.Dataset) (summary.Table, error) {
	totals, err := summary.GroupCounts(adsl, domain.ColTreatmentGroupPlanned)
	if err != nil {
		return summary.Table{}, err
	}
	filled := summary.ZeroFill(totals, b.groups)

	denominator := make(map[string]int, len(filled))
	allCells := make(summary.GroupCells, len(filled))
	for _, c := range filled {
		denominator[c.Group] = c.N
		allCells[c.Group] = summary.CountCell(c.N)
	}

	rows := []summary.CountRow{{Label: labelPopulation, Cells: allCells}}

	for _, flag := range populationFlags {
		if !adsl.HasColumn(flag.column) {
			b.logger.Debug("population flag column absent, omitting row",
				slog.String("column", flag.column))
			continue
		}
		column := flag.column
		members := adsl.Filter(func(r dataset.Row) bool {
			return r[column] == domain.FlagYes
		})
		counts, err := summary.GroupCounts(members, domain.ColTreatmentGroupPlanned)
		if err != nil {
			return summary.Table{}, err
		}

		cells := make(summary.GroupCells, len(b.groups))
		for _, c := range summary.ZeroFill(counts, b.groups) {
			cells[c.Group] = summary.CountPctPlainCell(c.N, denominator[c.Group])
		}
		rows = append(rows, summary.CountRow{Label: flag.label, Cells: cells})
	}

	a := summary.NewAssembler(b.groups)
	return a.Assemble("population", populationTitle, summary.CountSection{Rows: rows}), nil
}
