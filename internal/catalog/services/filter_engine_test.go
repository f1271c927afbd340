package services

import (
	"testing"

	"github.com/architect/city-events/internal/catalog/models"
	"github.com/stretchr/testify/assert"
)

func sampleCatalog() []models.Event {
	return []models.Event{
		{ID: "e1", Name: "Deep Dish Pizza Making Class", Category: "Food & Drink", Description: "Hands-on deep dish workshop", CostPerPerson: 10, DurationHours: 2},
		{ID: "e2", Name: "Curling Intro", Category: "Sports", Description: "Learn to curl", CostPerPerson: 90, DurationHours: 1},
		{ID: "e3", Name: "River Tour", Category: "Outdoor", Description: "Kayaking the main branch at sunset", CostPerPerson: 45, DurationHours: 2.5},
		{ID: "e4", Name: "Museum Hunt", Category: "Culture", Description: "Scavenger hunt with scorecards", CostPerPerson: 32, DurationHours: 2},
	}
}

func wideOpen() models.FilterState {
	return models.FilterState{
		CostRange:     models.Range{Min: 0, Max: 1000},
		DurationRange: models.Range{Min: 0, Max: 24},
	}
}

func TestVisible_NoFilters_ReturnsWholeCatalogInOrder(t *testing.T) {
	catalog := sampleCatalog()

	visible := Visible(catalog, wideOpen())

	assert.Len(t, visible, len(catalog))
	for i := range catalog {
		assert.Equal(t, catalog[i].ID, visible[i].ID)
	}
}

func TestVisible_CostRange_InclusiveBounds(t *testing.T) {
	state := wideOpen()
	state.CostRange = models.Range{Min: 10, Max: 45}

	visible := Visible(sampleCatalog(), state)

	// 10 and 45 sit exactly on the bounds and must be kept
	assert.Equal(t, []string{"e1", "e3", "e4"}, eventIDs(visible))
}

func TestVisible_CostWindow_ExcludesOutOfRange(t *testing.T) {
	catalog := []models.Event{
		{ID: "a", CostPerPerson: 10, DurationHours: 2, Category: "Food & Drink"},
		{ID: "b", CostPerPerson: 90, DurationHours: 1, Category: "Sports"},
	}
	state := wideOpen()
	state.CostRange = models.Range{Min: 0, Max: 50}

	visible := Visible(catalog, state)

	assert.Equal(t, []string{"a"}, eventIDs(visible))
}

func TestVisible_DurationRange_InclusiveBounds(t *testing.T) {
	state := wideOpen()
	state.DurationRange = models.Range{Min: 2, Max: 2.5}

	visible := Visible(sampleCatalog(), state)

	assert.Equal(t, []string{"e1", "e3", "e4"}, eventIDs(visible))
}

func TestVisible_SearchQuery_CaseInsensitiveSubstring(t *testing.T) {
	state := wideOpen()
	state.SearchQuery = "kayak"

	visible := Visible(sampleCatalog(), state)

	// "kayak" matches "Kayaking" in a description
	assert.Equal(t, []string{"e3"}, eventIDs(visible))
}

func TestVisible_SearchQuery_MatchesNameAndCategory(t *testing.T) {
	byName := wideOpen()
	byName.SearchQuery = "PIZZA"
	assert.Equal(t, []string{"e1"}, eventIDs(Visible(sampleCatalog(), byName)))

	byCategory := wideOpen()
	byCategory.SearchQuery = "sports"
	assert.Equal(t, []string{"e2"}, eventIDs(Visible(sampleCatalog(), byCategory)))
}

func TestVisible_EmptyCategorySet_IsPermissive(t *testing.T) {
	none := wideOpen()
	none.SelectedCategories = nil

	empty := wideOpen()
	empty.SelectedCategories = []string{}

	assert.Equal(t, eventIDs(Visible(sampleCatalog(), none)), eventIDs(Visible(sampleCatalog(), empty)))
	assert.Len(t, Visible(sampleCatalog(), empty), 4)
}

func TestVisible_CategoryFilter_KeepsMembersOnly(t *testing.T) {
	state := wideOpen()
	state.SelectedCategories = []string{"Sports", "Culture"}

	visible := Visible(sampleCatalog(), state)

	assert.Equal(t, []string{"e2", "e4"}, eventIDs(visible))
}

func TestVisible_Conjunction_AllPredicatesApply(t *testing.T) {
	state := wideOpen()
	state.SearchQuery = "hunt"
	state.SelectedCategories = []string{"Culture"}
	state.CostRange = models.Range{Min: 30, Max: 35}
	state.DurationRange = models.Range{Min: 2, Max: 2}

	visible := Visible(sampleCatalog(), state)

	assert.Equal(t, []string{"e4"}, eventIDs(visible))
}

func TestVisible_Idempotent(t *testing.T) {
	catalog := sampleCatalog()
	state := wideOpen()
	state.SearchQuery = "r"
	state.CostRange = models.Range{Min: 0, Max: 50}

	first := Visible(catalog, state)
	second := Visible(catalog, state)

	assert.Equal(t, first, second)
}

func TestVisible_PreservesCatalogOrder(t *testing.T) {
	state := wideOpen()
	state.CostRange = models.Range{Min: 0, Max: 50}

	visible := Visible(sampleCatalog(), state)

	// Subsequence of the catalog: relative order unchanged
	assert.Equal(t, []string{"e1", "e3", "e4"}, eventIDs(visible))
}

func TestVisible_WideningRangeNeverShrinksResult(t *testing.T) {
	catalog := sampleCatalog()
	state := wideOpen()
	state.CostRange = models.Range{Min: 20, Max: 50}
	base := len(Visible(catalog, state))

	lowerMin := state
	lowerMin.CostRange = models.Range{Min: 0, Max: 50}
	assert.GreaterOrEqual(t, len(Visible(catalog, lowerMin)), base)

	raiseMax := state
	raiseMax.CostRange = models.Range{Min: 20, Max: 100}
	assert.GreaterOrEqual(t, len(Visible(catalog, raiseMax)), base)

	widerDuration := state
	widerDuration.DurationRange = models.Range{Min: 0, Max: 48}
	assert.GreaterOrEqual(t, len(Visible(catalog, widerDuration)), base)
}

func TestVisible_EmptyCatalog(t *testing.T) {
	visible := Visible(nil, wideOpen())

	assert.NotNil(t, visible)
	assert.Len(t, visible, 0)
}

func TestCategoryUniverse_DistinctSorted(t *testing.T) {
	catalog := append(sampleCatalog(), models.Event{ID: "e5", Category: "Sports"})

	universe := CategoryUniverse(catalog)

	assert.Equal(t, []string{"Culture", "Food & Drink", "Outdoor", "Sports"}, universe)
}

func TestCategoryUniverse_EmptyCatalog(t *testing.T) {
	assert.Empty(t, CategoryUniverse(nil))
}

func eventIDs(events []models.Event) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}
