package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_IsValid(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryBeach, true},
		{CategoryMountainsOutdoors, true},
		{CategoryCultureHeritage, true},
		{Category("beach"), false},
		{Category("Desert"), false},
		{Category(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.IsValid())
		})
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		raw  string
		want SortMode
	}{
		{"price-asc", SortPriceAsc},
		{"price-desc", SortPriceDesc},
		{"popularity", SortPopularity},
		{"rating", SortRating},
		{"", SortPriceAsc},
		{"newest", SortPriceAsc},
		{"RATING", SortPriceAsc},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortMode(tt.raw))
		})
	}
}

func TestParseDeletePolicy(t *testing.T) {
	assert.Equal(t, DeletePolicyCascade, ParseDeletePolicy("cascade"))
	assert.Equal(t, DeletePolicyOrphan, ParseDeletePolicy("orphan"))
	assert.Equal(t, DeletePolicyOrphan, ParseDeletePolicy(""))
	assert.Equal(t, DeletePolicyOrphan, ParseDeletePolicy("soft"))
}

func TestPackage_BudgetInRange(t *testing.T) {
	assert.True(t, (&Package{MinBudget: 400, BudgetPerDay: 1000, MaxBudget: 2000}).BudgetInRange())
	assert.False(t, (&Package{MinBudget: 1200, BudgetPerDay: 1000, MaxBudget: 2000}).BudgetInRange())
	assert.False(t, (&Package{MinBudget: 400, BudgetPerDay: 3000, MaxBudget: 2000}).BudgetInRange())
}
