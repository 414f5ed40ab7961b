// models/filters.go
package models

// ChipAll is the single-select chip sentinel meaning "no chip filter".
const ChipAll = "All"

// FilterState is the full set of active search/filter criteria for the
// catalog grid. The zero value (empty sets, empty search, empty chip) matches
// every record. Owned by the caller; the catalog engine only reads it.
type FilterState struct {
	SearchText           string       `json:"q"`
	SelectedChip         string       `json:"chip"`
	SelectedCategories   []string     `json:"categories"`
	SelectedPricing      []Pricing    `json:"pricing"`
	SelectedCapabilities []Capability `json:"capabilities"`
}

// ClearFilters empties the three multi-select sets. Search text and the chip
// selection are deliberately left alone: "clear all filters" on the sidebar
// scopes to the sidebar, the search box and chip row live outside it.
func (f *FilterState) ClearFilters() {
	f.SelectedCategories = nil
	f.SelectedPricing = nil
	f.SelectedCapabilities = nil
}

// SortKey selects the ordering applied on category pages.
type SortKey string

const (
	SortPopular SortKey = "popular"
	SortNewest  SortKey = "newest"
	SortRating  SortKey = "rating"
)

// IsValid reports whether k is a supported sort key.
func (k SortKey) IsValid() bool {
	switch k {
	case SortPopular, SortNewest, SortRating:
		return true
	}
	return false
}
