package services

import (
	"sort"
	"strings"

	"github.com/architect/city-events/internal/catalog/models"
)

// Visible applies the filter state to a catalog and returns the visible
// subset. Pure: no side effects, no dependency on favorites or selection.
// The result preserves the catalog's incoming order; the catalog arrives
// pre-sorted by name from the store and is never re-sorted here.
//
// All predicates are conjunctive, applied as: text, category, cost,
// duration. Empty search text and an empty category set impose no
// restriction. Range bounds are inclusive on both ends.
func Visible(catalog []models.Event, state models.FilterState) []models.Event {
	query := strings.ToLower(state.SearchQuery)

	visible := make([]models.Event, 0, len(catalog))
	for _, event := range catalog {
		if query != "" && !matchesQuery(event, query) {
			continue
		}
		if len(state.SelectedCategories) > 0 && !containsCategory(state.SelectedCategories, event.Category) {
			continue
		}
		if !state.CostRange.Contains(event.CostPerPerson) {
			continue
		}
		if !state.DurationRange.Contains(event.DurationHours) {
			continue
		}
		visible = append(visible, event)
	}
	return visible
}

// matchesQuery checks the lowercased query against name, description and
// category as a substring.
func matchesQuery(event models.Event, query string) bool {
	return strings.Contains(strings.ToLower(event.Name), query) ||
		strings.Contains(strings.ToLower(event.Description), query) ||
		strings.Contains(strings.ToLower(event.Category), query)
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

// CategoryUniverse derives the distinct categories present in an
// unfiltered catalog, sorted for stable presentation. Recomputed whenever
// the catalog changes.
func CategoryUniverse(catalog []models.Event) []string {
	seen := make(map[string]struct{}, len(catalog))
	var universe []string
	for _, event := range catalog {
		if _, ok := seen[event.Category]; ok {
			continue
		}
		seen[event.Category] = struct{}{}
		universe = append(universe, event.Category)
	}
	sort.Strings(universe)
	return universe
}
