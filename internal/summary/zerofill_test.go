package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroFill(t *testing.T) {
	counts := []GroupCount{{Group: "Drug", N: 5}}
	groups := []string{"Placebo", "Drug", "High Dose"}

	filled := ZeroFill(counts, groups)

	assert.Equal(t, []GroupCount{
		{Group: "Placebo", N: 0},
		{Group: "Drug", N: 5},
		{Group: "High Dose", N: 0},
	}, filled)
}

func TestZeroFill_EmptyInput(t *testing.T) {
	filled := ZeroFill(nil, []string{"Placebo", "Drug"})

	require.Len(t, filled, 2)
	for _, c := range filled {
		assert.Equal(t, 0, c.N)
	}
}

func TestZeroFillCategories_Cardinality(t *testing.T) {
	tests := []struct {
		name       string
		counts     []CategoryCount
		groups     []string
		categories []string
		wantLen    int
	}{
		{
			name:       "full cross product",
			counts:     []CategoryCount{{Group: "Drug", Category: "F", N: 3}},
			groups:     []string{"Placebo", "Drug"},
			categories: []string{"F", "M"},
			wantLen:    4,
		},
		{
			name:    "no categories degenerates to one row per group",
			counts:  nil,
			groups:  []string{"Placebo", "Drug", "High Dose"},
			wantLen: 3,
		},
		{
			name:       "empty counts still produce every combination",
			counts:     nil,
			groups:     []string{"Placebo"},
			categories: []string{"F", "M", "U"},
			wantLen:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled := ZeroFillCategories(tt.counts, tt.groups, tt.categories)
			require.Len(t, filled, tt.wantLen)

			// Every (group, category) pair appears exactly once
			seen := make(map[[2]string]int)
			for _, c := range filled {
				seen[[2]string{c.Group, c.Category}]++
			}
			for pair, n := range seen {
				assert.Equal(t, 1, n, "pair %v duplicated", pair)
			}
		})
	}
}

func TestZeroFillCategories_PreservesCounts(t *testing.T) {
	counts := []CategoryCount{
		{Group: "Drug", Category: "F", N: 3},
		{Group: "Placebo", Category: "M", N: 2},
	}

	filled := ZeroFillCategories(counts, []string{"Placebo", "Drug"}, []string{"F", "M"})

	assert.Equal(t, []CategoryCount{
		{Group: "Placebo", Category: "F", N: 0},
		{Group: "Placebo", Category: "M", N: 2},
		{Group: "Drug", Category: "F", N: 3},
		{Group: "Drug", Category: "M", N: 0},
	}, filled)
}

func TestZeroFillTerms(t *testing.T) {
	counts := []TermCount{
		{Group: "Drug", OrganSystemClass: "Skin Disorders", EventTerm: "Rash", N: 2},
		{Group: "Placebo", OrganSystemClass: "Cardiac Disorders", EventTerm: "Palpitations", N: 1},
	}

	filled := ZeroFillTerms(counts, []string{"Placebo", "Drug"})

	assert.Equal(t, []TermCount{
		{Group: "Placebo", OrganSystemClass: "Cardiac Disorders", EventTerm: "Palpitations", N: 1},
		{Group: "Drug", OrganSystemClass: "Cardiac Disorders", EventTerm: "Palpitations", N: 0},
		{Group: "Placebo", OrganSystemClass: "Skin Disorders", EventTerm: "Rash", N: 0},
		{Group: "Drug", OrganSystemClass: "Skin Disorders", EventTerm: "Rash", N: 2},
	}, filled)
}
