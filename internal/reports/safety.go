package reports

import (
	"github.com/elong0527/demo-go-esub/internal/summary"
	"github.com/elong0527/demo-go-esub/pkg/contracts/domain"
)

// aeSummaryRows are the standard adverse-event summary categories used in
// regulatory submissions, in display order.
var aeSummaryRows = []struct {
	label  string
	filter summary.EventFilter
}{
	{"With any adverse event", summary.AnyEvent},
	{"With drug-related adverse event", summary.DrugRelatedEvent},
	{"With serious adverse event", summary.SeriousEvent},
	{"With serious drug-related adverse event", summary.SeriousDrugRelatedEvent},
	{"Who died", summary.FatalOutcome},
	{"Discontinued due to adverse event", summary.DrugWithdrawn},
}

// AESummary builds the adverse-event overview table. Each row counts unique
// participants matching one event filter, as "n (pct%)" against the safety
// population of the treatment group. The population row itself carries
// counts only, no percentage.
func (b *Builder) AESummary(events []domain.AdverseEvent, population map[string]int) summary.Table {
	popCells := make(summary.GroupCells, len(b.groups))
	for _, g := range b.groups {
		popCells[g] = summary.CountCell(population[g])
	}
	rows := []summary.CountRow{{Label: labelPopulation, Cells: popCells}}

	for _, def := range aeSummaryRows {
		counts := summary.UniqueSubjectCounts(events, def.filter)
		cells := make(summary.GroupCells, len(b.groups))
		for _, c := range summary.ZeroFill(counts, b.groups) {
			cells[c.Group] = summary.CountPctCell(c.N, population[c.Group])
		}
		rows = append(rows, summary.CountRow{Label: def.label, Cells: cells})
	}

	a := summary.NewAssembler(b.groups)
	return a.Assemble("ae_summary", "Adverse Events", summary.CountSection{Rows: rows})
}

// AEBySOC builds the hierarchical adverse-events table: organ system classes
// in alphabetical order, each with its event terms in alphabetical order,
// counting unique participants per term and treatment group. Term and class
// names are title-cased for display before grouping, so casing variants of
// the same term collapse into one row.
func (b *Builder) AEBySOC(events []domain.AdverseEvent, population map[string]int) summary.Table {
	standardized := make([]domain.AdverseEvent, len(events))
	for i, ev := range events {
		ev.OrganSystemClass = titleCase(ev.OrganSystemClass)
		ev.EventTerm = titleCase(ev.EventTerm)
		standardized[i] = ev
	}

	counts := summary.UniqueSubjectTermCounts(standardized)
	filled := summary.ZeroFillTerms(counts, b.groups)

	popCells := make(summary.GroupCells, len(b.groups))
	for _, g := range b.groups {
		popCells[g] = summary.CountCell(population[g])
	}

	// filled is sorted by class then term, with one entry per group inside
	// each term; fold consecutive runs into the section hierarchy.
	var classes []summary.ClassGroup
	for _, tc := range filled {
		if len(classes) == 0 || classes[len(classes)-1].Name != tc.OrganSystemClass {
			classes = append(classes, summary.ClassGroup{Name: tc.OrganSystemClass})
		}
		class := &classes[len(classes)-1]
		if len(class.Terms) == 0 || class.Terms[len(class.Terms)-1].Name != tc.EventTerm {
			class.Terms = append(class.Terms, summary.TermRow{
				Name:  tc.EventTerm,
				Cells: make(summary.GroupCells, len(b.groups)),
			})
		}
		class.Terms[len(class.Terms)-1].Cells[tc.Group] = summary.CountCell(tc.N)
	}

	a := summary.NewAssembler(b.groups)
	return a.Assemble("ae_by_soc", "System Organ Class / Preferred Term", summary.HierarchicalSection{
		PopulationLabel: labelPopulation,
		Population:      popCells,
		Classes:         classes,
	})
}
