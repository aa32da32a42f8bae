package summary

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/elong0527/demo-go-esub/internal/dataset"
	apperrors "github.com/elong0527/demo-go-esub/internal/errors"
	"github.com/elong0527/demo-go-esub/pkg/contracts/domain"
)

// GroupStat holds continuous-variable statistics for one treatment group.
// Mean is rounded to one decimal and SD to two; these precisions are report
// format constants, not data dependent.
type GroupStat struct {
	Group  string
	N      int
	Mean   float64
	SD     float64
	Median float64
	Min    float64
	Max    float64
}

// GroupCount holds a count for one treatment group
type GroupCount struct {
	Group string
	N     int
}

// CategoryCount holds a count for one (treatment group, category) pair
type CategoryCount struct {
	Group    string
	Category string
	N        int
}

// TermCount holds a unique-subject count for one adverse-event term within
// an organ system class, for one treatment group.
type TermCount struct {
	Group            string
	OrganSystemClass string
	EventTerm        string
	N                int
}

// ContinuousStats computes per-group statistics for a continuous variable.
// Rows whose value is empty or non-numeric are treated as missing and do not
// contribute. Groups with no contributing rows are absent from the result;
// zero-fill restores them downstream.
//
// Median policy: for even-sized groups the lower of the two central elements
// is reported, not an interpolated midpoint.
func ContinuousStats(ds dataset.Dataset, groupCol, valueCol string) ([]GroupStat, error) {
	if !ds.HasColumn(groupCol) {
		return nil, missingColumn(groupCol)
	}
	if !ds.HasColumn(valueCol) {
		return nil, missingColumn(valueCol)
	}

	order := make([]string, 0)
	values := make(map[string][]float64)
	for i := 0; i < ds.Len(); i++ {
		group := ds.Value(i, groupCol)
		if group == "" {
			continue
		}
		v, err := strconv.ParseFloat(ds.Value(i, valueCol), 64)
		if err != nil {
			continue // missing or non-numeric value
		}
		if _, ok := values[group]; !ok {
			order = append(order, group)
		}
		values[group] = append(values[group], v)
	}

	stats := make([]GroupStat, 0, len(order))
	for _, group := range order {
		stats = append(stats, describe(group, values[group]))
	}
	return stats, nil
}

// describe computes the statistics for one group's values. vs is non-empty.
func describe(group string, vs []float64) GroupStat {
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range vs {
		sum += v
	}
	mean := sum / float64(len(vs))

	var sd float64
	if len(vs) > 1 {
		var ss float64
		for _, v := range vs {
			ss += (v - mean) * (v - mean)
		}
		sd = math.Sqrt(ss / float64(len(vs)-1))
	}

	return GroupStat{
		Group:  group,
		N:      len(vs),
		Mean:   round1(mean),
		SD:     round2(sd),
		Median: sorted[(len(sorted)-1)/2],
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}

// GroupCounts counts rows per treatment group, in first-occurrence group
// order.
func GroupCounts(ds dataset.Dataset, groupCol string) ([]GroupCount, error) {
	if !ds.HasColumn(groupCol) {
		return nil, missingColumn(groupCol)
	}

	order := make([]string, 0)
	counts := make(map[string]int)
	for i := 0; i < ds.Len(); i++ {
		group := ds.Value(i, groupCol)
		if group == "" {
			continue
		}
		if _, ok := counts[group]; !ok {
			order = append(order, group)
		}
		counts[group]++
	}

	out := make([]GroupCount, 0, len(order))
	for _, group := range order {
		out = append(out, GroupCount{Group: group, N: counts[group]})
	}
	return out, nil
}

// CategoryCounts counts rows per (treatment group, category) pair. Pairs
// appear in first-occurrence order; rows with an empty category are skipped.
func CategoryCounts(ds dataset.Dataset, groupCol, catCol string) ([]CategoryCount, error) {
	if !ds.HasColumn(groupCol) {
		return nil, missingColumn(groupCol)
	}
	if !ds.HasColumn(catCol) {
		return nil, missingColumn(catCol)
	}

	type key struct{ group, cat string }
	order := make([]key, 0)
	counts := make(map[key]int)
	for i := 0; i < ds.Len(); i++ {
		k := key{group: ds.Value(i, groupCol), cat: ds.Value(i, catCol)}
		if k.group == "" || k.cat == "" {
			continue
		}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	out := make([]CategoryCount, 0, len(order))
	for _, k := range order {
		out = append(out, CategoryCount{Group: k.group, Category: k.cat, N: counts[k]})
	}
	return out, nil
}

// UniqueSubjectCounts counts distinct subjects per treatment group among
// events matching the filter. A subject with several qualifying events counts
// once; this is what keeps AE tables from double-counting participants.
func UniqueSubjectCounts(events []domain.AdverseEvent, filter EventFilter) []GroupCount {
	type key struct{ group, subject string }
	seen := make(map[key]bool)
	order := make([]string, 0)
	counts := make(map[string]int)

	for _, ev := range events {
		if !filter.Match(ev) {
			continue
		}
		k := key{group: ev.TreatmentGroup, subject: ev.SubjectID}
		if k.group == "" || seen[k] {
			continue
		}
		seen[k] = true
		if _, ok := counts[k.group]; !ok {
			order = append(order, k.group)
		}
		counts[k.group]++
	}

	out := make([]GroupCount, 0, len(order))
	for _, group := range order {
		out = append(out, GroupCount{Group: group, N: counts[group]})
	}
	return out
}

// UniqueSubjectTermCounts counts distinct subjects per (treatment group,
// organ system class, event term) triple across all events.
func UniqueSubjectTermCounts(events []domain.AdverseEvent) []TermCount {
	type key struct{ group, soc, term, subject string }
	type cell struct{ group, soc, term string }
	seen := make(map[key]bool)
	order := make([]cell, 0)
	counts := make(map[cell]int)

	for _, ev := range events {
		k := key{group: ev.TreatmentGroup, soc: ev.OrganSystemClass, term: ev.EventTerm, subject: ev.SubjectID}
		if k.group == "" || k.term == "" || seen[k] {
			continue
		}
		seen[k] = true
		c := cell{group: k.group, soc: k.soc, term: k.term}
		if _, ok := counts[c]; !ok {
			order = append(order, c)
		}
		counts[c]++
	}

	out := make([]TermCount, 0, len(order))
	for _, c := range order {
		out = append(out, TermCount{Group: c.group, OrganSystemClass: c.soc, EventTerm: c.term, N: counts[c]})
	}
	return out
}

func missingColumn(col string) error {
	return apperrors.NewConfigError(fmt.Sprintf("required column %s is missing from the dataset", col), nil)
}

// round1 rounds to one decimal, half away from zero
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimals, half away from zero
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
