package reports

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/elong0527/demo-go-esub/internal/dataset"
	apperrors "github.com/elong0527/demo-go-esub/internal/errors"
	"github.com/elong0527/demo-go-esub/internal/infrastructure"
	"github.com/elong0527/demo-go-esub/internal/summary"
	"github.com/elong0527/demo-go-esub/pkg/contracts/domain"
)

// Builder produces the report's summary tables. The treatment-group order it
// is created with is the column order of every table it builds; no table may
// deviate from it.
type Builder struct {
	logger *slog.Logger
	groups []string
}

// NewBuilder creates a table builder for the given treatment-group order
func NewBuilder(logger *slog.Logger, groups []string) (*Builder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(groups) == 0 {
		return nil, apperrors.NewConfigError("treatment group list is empty", nil)
	}
	out := make([]string, len(groups))
	copy(out, groups)
	return &Builder{logger: logger, groups: out}, nil
}

// Groups returns the report's treatment-group order
func (b *Builder) Groups() []string {
	out := make([]string, len(b.groups))
	copy(out, b.groups)
	return out
}

// ReportSet bundles the four standard tables of one report
type ReportSet struct {
	Population summary.Table
	Baseline   summary.Table
	AESummary  summary.Table
	AEBySOC    summary.Table
}

// Tables returns the set in report order
func (r *ReportSet) Tables() []summary.Table {
	return []summary.Table{r.Population, r.Baseline, r.AESummary, r.AEBySOC}
}

// BuildAll builds the four standard tables. The per-table builds have no
// data dependency on one another and run concurrently; the merged result is
// identical regardless of scheduling.
func (b *Builder) BuildAll(ctx context.Context, adsl dataset.Dataset, events []domain.AdverseEvent, continuousVars, categoricalVars []string) (*ReportSet, error) {
	logger := infrastructure.LoggerWithContext(ctx)
	logger.InfoContext(ctx, "building report tables",
		slog.Int("subject_count", adsl.Len()),
		slog.Int("event_count", len(events)),
		slog.Int("treatment_groups", len(b.groups)))

	safetyPop, err := b.safetyPopulation(adsl)
	if err != nil {
		return nil, err
	}

	var set ReportSet
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		table, err := b.Population(adsl)
		if err != nil {
			return err
		}
		set.Population = table
		return nil
	})
	g.Go(func() error {
		table, err := b.Baseline(adsl, continuousVars, categoricalVars)
		if err != nil {
			return err
		}
		set.Baseline = table
		return nil
	})
	g.Go(func() error {
		set.AESummary = b.AESummary(events, safetyPop)
		return nil
	})
	g.Go(func() error {
		set.AEBySOC = b.AEBySOC(events, safetyPop)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "report tables built",
		slog.Int("table_count", len(set.Tables())))
	return &set, nil
}

// safetyPopulation returns per-group safety population counts: subjects with
// SafetyFlag = Y, by actual treatment group, zero-filled over the report's
// groups. When the flag column is absent every subject counts.
func (b *Builder) safetyPopulation(adsl dataset.Dataset) (map[string]int, error) {
	ds := adsl
	if ds.HasColumn(domain.ColSafetyFlag) {
		ds = ds.Filter(func(r dataset.Row) bool {
			return r[domain.ColSafetyFlag] == domain.FlagYes
		})
	}

	groupCol := domain.ColTreatmentGroupActual
	if !ds.HasColumn(groupCol) {
		groupCol = domain.ColTreatmentGroupPlanned
	}

	counts, err := summary.GroupCounts(ds, groupCol)
	if err != nil {
		return nil, err
	}

	pop := make(map[string]int, len(b.groups))
	for _, c := range summary.ZeroFill(counts, b.groups) {
		pop[c.Group] = c.N
	}
	return pop, nil
}

// titleCase uppercases the first letter of each word and lowercases the
// rest, the display convention for variable labels and AE terms.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
