package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func day(n int) time.Time {
	return time.Date(2025, 1, n, 0, 0, 0, 0, time.UTC)
}

func fixtureCatalog() []models.AiModel {
	return []models.AiModel{
		{
			Slug: "alpha", Name: "Alpha", ShortDescription: "Conversational assistant",
			Category: "chat", Pricing: models.PricingFree, Rating: 4.5,
			Tags:          models.TagsList{"assistant", "writing"},
			Capabilities:  models.CapabilityList{models.CapabilityText},
			InstallsCount: intPtr(500), LastUpdated: day(10),
			Featured: true, TrendingScore: floatPtr(88),
		},
		{
			Slug: "beta", Name: "Beta", ShortDescription: "Image generation studio",
			Category: "vision", Pricing: models.PricingPaid, Rating: 3.0,
			Tags:         models.TagsList{"art", "diffusion"},
			Capabilities: models.CapabilityList{models.CapabilityImage},
			LastUpdated:  day(20),
			Featured:     true,
		},
		{
			Slug: "gamma", Name: "Gamma", ShortDescription: "Code completion engine",
			Category: "code", Pricing: models.PricingFreemium, Rating: 4.5,
			Tags:          models.TagsList{"developer", "autocomplete"},
			Capabilities:  models.CapabilityList{models.CapabilityCode, models.CapabilityText},
			InstallsCount: intPtr(900), LastUpdated: day(5),
			TrendingScore: floatPtr(95),
		},
		{
			Slug: "delta", Name: "Delta", ShortDescription: "Voice cloning toolkit",
			Category: "chat", Pricing: models.PricingPaid, Rating: 2.0,
			Tags:         models.TagsList{"speech"},
			Capabilities: models.CapabilityList{models.CapabilityAudio},
			LastUpdated:  day(15),
		},
	}
}

func slugs(records []models.AiModel) []string {
	out := make([]string, 0, len(records))
	for _, m := range records {
		out = append(out, m.Slug)
	}
	return out
}

func TestFilterIdentity(t *testing.T) {
	records := fixtureCatalog()

	got := Filter(records, models.FilterState{SelectedChip: models.ChipAll})

	assert.Equal(t, slugs(records), slugs(got), "empty filter state must return the full catalog in original order")
}

func TestFilterSearch(t *testing.T) {
	records := fixtureCatalog()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches name case-insensitively", "ALPH", []string{"alpha"}},
		{"matches short description", "image gen", []string{"beta"}},
		{"matches a tag", "diffus", []string{"beta"}},
		{"substring across several records", "a", []string{"alpha", "beta", "gamma", "delta"}},
		{"no field matches", "quantum", []string{}},
		{"whitespace is part of the query", "alpha ", []string{}},
		{"inner whitespace matches across words", "generation studio", []string{"beta"}},
		{"whitespace-only query matches any field containing a space", " ", []string{"alpha", "beta", "gamma", "delta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, models.FilterState{SearchText: tt.query})
			assert.Equal(t, tt.want, slugs(got))
		})
	}
}

func TestFilterChip(t *testing.T) {
	records := fixtureCatalog()

	all := Filter(records, models.FilterState{SelectedChip: models.ChipAll})
	assert.Len(t, all, len(records), "All sentinel must not filter")

	chat := Filter(records, models.FilterState{SelectedChip: "Chat"})
	assert.Equal(t, []string{"alpha", "delta"}, slugs(chat), "chip comparison is case-insensitive")
}

func TestFilterSets(t *testing.T) {
	records := fixtureCatalog()

	t.Run("category membership", func(t *testing.T) {
		got := Filter(records, models.FilterState{SelectedCategories: []string{"code", "vision"}})
		assert.Equal(t, []string{"beta", "gamma"}, slugs(got))
	})

	t.Run("pricing membership", func(t *testing.T) {
		got := Filter(records, models.FilterState{SelectedPricing: []models.Pricing{models.PricingPaid}})
		assert.Equal(t, []string{"beta", "delta"}, slugs(got))
	})

	t.Run("capability intersection", func(t *testing.T) {
		got := Filter(records, models.FilterState{
			SelectedCapabilities: []models.Capability{models.CapabilityText, models.CapabilityAudio},
		})
		// gamma has text among several capabilities: intersection, not containment
		assert.Equal(t, []string{"alpha", "gamma", "delta"}, slugs(got))
	})

	t.Run("predicates AND together", func(t *testing.T) {
		got := Filter(records, models.FilterState{
			SelectedCategories: []string{"chat"},
			SelectedPricing:    []models.Pricing{models.PricingPaid},
		})
		assert.Equal(t, []string{"delta"}, slugs(got))
	})
}

func TestFilterMonotonicity(t *testing.T) {
	records := fixtureCatalog()
	base := Filter(records, models.FilterState{})

	state := models.FilterState{}
	state.SelectedPricing = append(state.SelectedPricing, models.PricingFree)
	narrowed := Filter(records, state)
	assert.LessOrEqual(t, len(narrowed), len(base), "adding a filter element can only shrink or preserve the result")

	state.SelectedPricing = nil
	restored := Filter(records, state)
	assert.Equal(t, slugs(base), slugs(restored), "emptying the set restores the unfiltered result")
}

func TestSortPopularStable(t *testing.T) {
	records := fixtureCatalog()

	got := Sort(records, models.SortPopular)

	// beta and delta both lack an install count: treated as zero and their
	// relative input order must survive the sort.
	assert.Equal(t, []string{"gamma", "alpha", "beta", "delta"}, slugs(got))
}

func TestSortNewest(t *testing.T) {
	records := fixtureCatalog()

	got := Sort(records, models.SortNewest)

	assert.Equal(t, []string{"beta", "delta", "alpha", "gamma"}, slugs(got))
}

func TestSortNewestZeroTimestampRanksOldest(t *testing.T) {
	records := fixtureCatalog()
	records = append(records, models.AiModel{Slug: "epsilon", Name: "Epsilon", Category: "chat"})

	got := Sort(records, models.SortNewest)

	assert.Equal(t, "epsilon", got[len(got)-1].Slug)
}

func TestSortRatingStable(t *testing.T) {
	records := fixtureCatalog()

	got := Sort(records, models.SortRating)

	// alpha and gamma tie at 4.5; input order breaks the tie.
	assert.Equal(t, []string{"alpha", "gamma", "beta", "delta"}, slugs(got))
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	records := fixtureCatalog()

	got := Sort(records, models.SortKey("bogus"))

	assert.Equal(t, slugs(records), slugs(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := fixtureCatalog()
	before := slugs(records)

	_ = Sort(records, models.SortPopular)

	assert.Equal(t, before, slugs(records))
}

func TestTrending(t *testing.T) {
	records := fixtureCatalog()

	got := Trending(records, 6)
	assert.Equal(t, []string{"gamma", "alpha"}, slugs(got), "only scored records, highest first")

	assert.Len(t, Trending(records, 1), 1)
	assert.Empty(t, Trending(records, 0))
}

func TestNewest(t *testing.T) {
	records := fixtureCatalog()

	got := Newest(records, 3)

	assert.Equal(t, []string{"beta", "delta", "alpha"}, slugs(got), "every record is eligible, most recent first")
}

func TestFeatured(t *testing.T) {
	records := fixtureCatalog()

	got := Featured(records, 6)

	assert.Equal(t, []string{"alpha", "beta"}, slugs(got), "original order is preserved")
	assert.Len(t, Featured(records, 1), 1)
}

func TestCategoryModelCount(t *testing.T) {
	records := fixtureCatalog()

	assert.Equal(t, 2, CategoryModelCount(records, "chat"))
	assert.Equal(t, 1, CategoryModelCount(records, "vision"))
	assert.Equal(t, 0, CategoryModelCount(records, "missing"))

	// count tracks the live records, not any stored figure
	records = append(records, models.AiModel{Slug: "zeta", Category: "chat"})
	assert.Equal(t, 3, CategoryModelCount(records, "chat"))
}

func TestClearFiltersScope(t *testing.T) {
	state := models.FilterState{
		SearchText:           "alpha",
		SelectedChip:         "Chat",
		SelectedCategories:   []string{"chat"},
		SelectedPricing:      []models.Pricing{models.PricingFree},
		SelectedCapabilities: []models.Capability{models.CapabilityText},
	}

	state.ClearFilters()

	assert.Empty(t, state.SelectedCategories)
	assert.Empty(t, state.SelectedPricing)
	assert.Empty(t, state.SelectedCapabilities)
	assert.Equal(t, "alpha", state.SearchText, "clear all leaves search text alone")
	assert.Equal(t, "Chat", state.SelectedChip, "clear all leaves the chip alone")
}

func TestSpecScenario(t *testing.T) {
	records := []models.AiModel{
		{Slug: "alpha", Name: "Alpha", Category: "chat", Pricing: models.PricingFree, Rating: 4.5},
		{Slug: "beta", Name: "Beta", Category: "vision", Pricing: models.PricingPaid, Rating: 3.0},
	}

	bySearch := Filter(records, models.FilterState{SearchText: "alp"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Alpha", bySearch[0].Name)

	byPricing := Filter(records, models.FilterState{SelectedPricing: []models.Pricing{models.PricingPaid}})
	require.Len(t, byPricing, 1)
	assert.Equal(t, "Beta", byPricing[0].Name)

	byRating := Sort(records, models.SortRating)
	assert.Equal(t, []string{"alpha", "beta"}, slugs(byRating))
}
