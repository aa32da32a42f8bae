package reports

import (
	"github.com/elong0527/demo-go-esub/internal/dataset"
	"github.com/elong0527/demo-go-esub/internal/summary"
	"github.com/elong0527/demo-go-esub/pkg/contracts/domain"
)

// Baseline builds the baseline characteristics table: continuous variables
// first (Mean (SD) and Median [Min, Max] rows), then categorical variables
// (one count/percentage row per category, in first-occurrence order). A
// requested variable missing from the dataset is a fatal configuration
// error.
func (b *Builder) Baseline(adsl dataset.Dataset, continuousVars, categoricalVars []string) (summary.Table, error) {
	totals, err := summary.GroupCounts(adsl, domain.ColTreatmentGroupPlanned)
	if err != nil {
		return summary.Table{}, err
	}
	denominator := make(map[string]int, len(b.groups))
	for _, c := range summary.ZeroFill(totals, b.groups) {
		denominator[c.Group] = c.N
	}

	sections := make([]summary.Section, 0, len(continuousVars)+len(categoricalVars))

	for _, v := range continuousVars {
		section, err := b.continuousSection(adsl, v)
		if err != nil {
			return summary.Table{}, err
		}
		sections = append(sections, section)
	}

	for _, v := range categoricalVars {
		section, err := b.categoricalSection(adsl, v, denominator)
		if err != nil {
			return summary.Table{}, err
		}
		sections = append(sections, section)
	}

	a := summary.NewAssembler(b.groups)
	return a.Assemble("baseline", characteristicID, sections...), nil
}

func (b *Builder) continuousSection(adsl dataset.Dataset, variable string) (summary.Section, error) {
	stats, err := summary.ContinuousStats(adsl, domain.ColTreatmentGroupPlanned, variable)
	if err != nil {
		return nil, err
	}

	meanSD := make(summary.GroupCells, len(stats))
	medianRange := make(summary.GroupCells, len(stats))
	for _, st := range stats {
		meanSD[st.Group] = summary.MeanSDCell(st)
		medianRange[st.Group] = summary.MedianRangeCell(st)
	}

	return summary.ContinuousSection{
		Label:       variableLabel(variable),
		MeanSD:      meanSD,
		MedianRange: medianRange,
	}, nil
}

func (b *Builder) categoricalSection(adsl dataset.Dataset, variable string, denominator map[string]int) (summary.Section, error) {
	counts, err := summary.CategoryCounts(adsl, domain.ColTreatmentGroupPlanned, variable)
	if err != nil {
		return nil, err
	}

	// Zero-fill covers the categories observed in the counts; categories in
	// the first-occurrence list but absent from every group stay out of the
	// cell map and are skipped by the section.
	observed := make([]string, 0, len(counts))
	seen := make(map[string]bool, len(counts))
	for _, c := range counts {
		if !seen[c.Category] {
			seen[c.Category] = true
			observed = append(observed, c.Category)
		}
	}

	cells := make(map[string]summary.GroupCells, len(observed))
	for _, c := range summary.ZeroFillCategories(counts, b.groups, observed) {
		if cells[c.Category] == nil {
			cells[c.Category] = make(summary.GroupCells, len(b.groups))
		}
		cells[c.Category][c.Group] = summary.CountPctCell(c.N, denominator[c.Group])
	}

	return summary.CategoricalSection{
		Label:      variableLabel(variable),
		Categories: adsl.UniqueStrings(variable),
		Cells:      cells,
	}, nil
}

// variableLabel maps a dataset column name to its display label
func variableLabel(variable string) string {
	if variable == "AGE" {
		return "Age (years)"
	}
	return titleCase(variable)
}
