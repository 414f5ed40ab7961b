// Package catalog computes the visible subset and ordering of models for the
// storefront. Every function is a pure function of its inputs: the record
// slice is never mutated, results are fresh slices, and nothing here errors.
// Handlers call these on every request against an immutable snapshot.
package catalog

import (
	"sort"
	"strings"

	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
)

// Filter returns the records that pass every active criterion in state.
// Each predicate is an OR across its own criteria; a record must pass all
// five. Relative order of the input is preserved.
func Filter(records []models.AiModel, state models.FilterState) []models.AiModel {
	// The query is lowercased but NOT trimmed: whitespace is part of the
	// search, so "alpha " only matches fields containing "alpha ".
	query := strings.ToLower(state.SearchText)

	out := make([]models.AiModel, 0, len(records))
	for _, m := range records {
		if !matchesSearch(m, query) {
			continue
		}
		if !matchesChip(m, state.SelectedChip) {
			continue
		}
		if !matchesCategories(m, state.SelectedCategories) {
			continue
		}
		if !matchesPricing(m, state.SelectedPricing) {
			continue
		}
		if !matchesCapabilities(m, state.SelectedCapabilities) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// matchesSearch passes on empty query, or a case-insensitive substring hit
// against the name, short description, or any tag.
func matchesSearch(m models.AiModel, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(m.ShortDescription), query) {
		return true
	}
	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// matchesChip passes on the "All" sentinel (or no chip at all), otherwise
// compares the chip label to the model category case-insensitively.
func matchesChip(m models.AiModel, chip string) bool {
	if chip == "" || chip == models.ChipAll {
		return true
	}
	return strings.EqualFold(m.Category, chip)
}

func matchesCategories(m models.AiModel, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, slug := range selected {
		if m.Category == slug {
			return true
		}
	}
	return false
}

func matchesPricing(m models.AiModel, selected []models.Pricing) bool {
	if len(selected) == 0 {
		return true
	}
	for _, p := range selected {
		if m.Pricing == p {
			return true
		}
	}
	return false
}

// matchesCapabilities needs a non-empty intersection, not full containment.
func matchesCapabilities(m models.AiModel, selected []models.Capability) bool {
	if len(selected) == 0 {
		return true
	}
	for _, c := range selected {
		if m.Capabilities.Contains(c) {
			return true
		}
	}
	return false
}

// Sort returns a copy of records ordered by the given key, descending.
// The sort is stable: records with equal keys keep their input order, which
// matters for "popular" where a missing install count is common. An unknown
// key returns the records unchanged.
//
// Missing install counts rank as zero; a zero LastUpdated timestamp ranks
// as oldest. Both sentinels keep the order total without ever raising.
func Sort(records []models.AiModel, key models.SortKey) []models.AiModel {
	out := make([]models.AiModel, len(records))
	copy(out, records)

	switch key {
	case models.SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return installs(out[i]) > installs(out[j])
		})
	case models.SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LastUpdated.After(out[j].LastUpdated)
		})
	case models.SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}
	return out
}

func installs(m models.AiModel) int {
	if m.InstallsCount == nil {
		return 0
	}
	return *m.InstallsCount
}

// Trending returns up to limit records that carry a trending score, highest
// score first.
func Trending(records []models.AiModel, limit int) []models.AiModel {
	scored := make([]models.AiModel, 0, len(records))
	for _, m := range records {
		if m.TrendingScore != nil {
			scored = append(scored, m)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].TrendingScore > *scored[j].TrendingScore
	})
	return truncate(scored, limit)
}

// Newest returns up to limit records, most recently updated first. Unlike
// Trending it considers every record: LastUpdated is always present.
func Newest(records []models.AiModel, limit int) []models.AiModel {
	return truncate(Sort(records, models.SortNewest), limit)
}

// Featured returns up to limit featured records in their original order.
func Featured(records []models.AiModel, limit int) []models.AiModel {
	out := make([]models.AiModel, 0, len(records))
	for _, m := range records {
		if m.Featured {
			out = append(out, m)
		}
	}
	return truncate(out, limit)
}

// CategoryModelCount counts the records in the given category. Always counts
// the live records instead of trusting a stored figure.
func CategoryModelCount(records []models.AiModel, categorySlug string) int {
	count := 0
	for _, m := range records {
		if m.Category == categorySlug {
			count++
		}
	}
	return count
}

func truncate(records []models.AiModel, limit int) []models.AiModel {
	if limit < 0 {
		limit = 0
	}
	if len(records) > limit {
		return records[:limit]
	}
	return records
}
