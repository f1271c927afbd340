package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCity_Valid(t *testing.T) {
	assert.True(t, CityChicago.Valid())
	assert.True(t, CityMinneapolis.Valid())
	assert.False(t, City("duluth").Valid())
	assert.False(t, City("").Valid())
}

func TestRange_Contains_InclusiveBounds(t *testing.T) {
	r := Range{Min: 10, Max: 50}

	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(50))
	assert.True(t, r.Contains(30))
	assert.False(t, r.Contains(9.99))
	assert.False(t, r.Contains(50.01))
}

func TestDefaultFilterState(t *testing.T) {
	state := DefaultFilterState()

	assert.Equal(t, "", state.SearchQuery)
	assert.Empty(t, state.SelectedCategories)
	assert.Equal(t, Range{Min: 0, Max: 100}, state.CostRange)
	assert.Equal(t, Range{Min: 0, Max: 5}, state.DurationRange)
}

func TestFilterState_Reset(t *testing.T) {
	state := DefaultFilterState()
	state.SearchQuery = "kayak"
	state.SelectedCategories = []string{"Outdoor"}
	state.CostRange = Range{Min: 20, Max: 40}

	state.Reset()

	assert.Equal(t, DefaultFilterState(), state)
}

func TestDisplayForCategory_Known(t *testing.T) {
	info := DisplayForCategory("Outdoor")

	assert.Equal(t, "Outdoor", info.Name)
	assert.Equal(t, "tree", info.Icon)
}

func TestDisplayForCategory_UnknownFallsBack(t *testing.T) {
	info := DisplayForCategory("Birdwatching")

	assert.Equal(t, "Birdwatching", info.Name)
	assert.Equal(t, "Birdwatching", info.Label)
	assert.Equal(t, "map-pin", info.Icon)
}
