package summary

import "sort"

// ZeroFill returns exactly one count per required group, in the given group
// order. Groups absent from counts get n = 0. A treatment group with no
// observations still renders as an explicit zero row; omission is the classic
// aggregation bug this guards against.
func ZeroFill(counts []GroupCount, groups []string) []GroupCount {
	byGroup := make(map[string]int, len(counts))
	for _, c := range counts {
		byGroup[c.Group] = c.N
	}

	out := make([]GroupCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupCount{Group: g, N: byGroup[g]})
	}
	return out
}

// ZeroFillCategories returns exactly |groups| × max(1, |categories|) rows:
// one per (group, category) combination, in group-major order following the
// given orders. When categories is empty the result degenerates to one row
// per group with an empty category.
func ZeroFillCategories(counts []CategoryCount, groups, categories []string) []CategoryCount {
	type key struct{ group, cat string }
	byKey := make(map[key]int, len(counts))
	for _, c := range counts {
		byKey[key{group: c.Group, cat: c.Category}] = c.N
	}

	if len(categories) == 0 {
		categories = []string{""}
	}

	out := make([]CategoryCount, 0, len(groups)*len(categories))
	for _, g := range groups {
		for _, cat := range categories {
			out = append(out, CategoryCount{
				Group:    g,
				Category: cat,
				N:        byKey[key{group: g, cat: cat}],
			})
		}
	}
	return out
}

// ZeroFillTerms expands term counts so every (organ system class, term)
// observed anywhere carries a count for every required group. Output is
// sorted alphabetically by class then term, with groups in the given order
// within each term.
func ZeroFillTerms(counts []TermCount, groups []string) []TermCount {
	type term struct{ soc, name string }
	type key struct {
		soc, name, group string
	}

	byKey := make(map[key]int, len(counts))
	terms := make([]term, 0)
	seen := make(map[term]bool)
	for _, c := range counts {
		tm := term{soc: c.OrganSystemClass, name: c.EventTerm}
		if !seen[tm] {
			seen[tm] = true
			terms = append(terms, tm)
		}
		byKey[key{soc: c.OrganSystemClass, name: c.EventTerm, group: c.Group}] = c.N
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].soc != terms[j].soc {
			return terms[i].soc < terms[j].soc
		}
		return terms[i].name < terms[j].name
	})

	out := make([]TermCount, 0, len(terms)*len(groups))
	for _, tm := range terms {
		for _, g := range groups {
			out = append(out, TermCount{
				Group:            g,
				OrganSystemClass: tm.soc,
				EventTerm:        tm.name,
				N:                byKey[key{soc: tm.soc, name: tm.name, group: g}],
			})
		}
	}
	return out
}
