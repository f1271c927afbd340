package services

import (
	"context"
	"testing"

	"github.com/architect/city-events/internal/catalog/models"
	"github.com/architect/city-events/internal/common/errors"
	"github.com/stretchr/testify/assert"
)

func TestCatalogService_ListVisible_AppliesFilters(t *testing.T) {
	service := NewCatalogService(newFakeEventRepo())

	state := models.DefaultFilterState()
	state.CostRange = models.Range{Min: 0, Max: 60}

	response, err := service.ListVisible(context.Background(), models.CityChicago, state)

	assert.NoError(t, err)
	assert.Equal(t, []string{"chi-1"}, eventIDs(response.Events))
	assert.Equal(t, 1, response.Total)
	assert.Equal(t, 2, response.CatalogTotal)
}

func TestCatalogService_ListVisible_InvalidRangeRejected(t *testing.T) {
	service := NewCatalogService(newFakeEventRepo())

	state := models.DefaultFilterState()
	state.CostRange = models.Range{Min: 50, Max: 10}

	_, err := service.ListVisible(context.Background(), models.CityChicago, state)

	assert.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidation))
}

func TestCatalogService_ListVisible_UnknownCity(t *testing.T) {
	service := NewCatalogService(newFakeEventRepo())

	_, err := service.ListVisible(context.Background(), models.City("duluth"), models.DefaultFilterState())

	assert.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeBadRequest))
}

func TestCatalogService_LoadCatalog_ReportsDataQuality(t *testing.T) {
	repo := newFakeEventRepo()
	repo.byCity["chicago"] = append(repo.byCity["chicago"], models.EventRecord{
		ID: "chi-broken", Name: "Mystery Outing", Category: "Games", City: "chicago",
		CostPerPerson: "call us", DurationHours: "2",
	})
	service := NewCatalogService(repo)

	events, issues, err := service.LoadCatalog(context.Background(), models.CityChicago)

	assert.NoError(t, err)
	assert.Equal(t, []string{"chi-1", "chi-2"}, eventIDs(events))
	assert.Len(t, issues, 1)
	assert.Equal(t, "chi-broken", issues[0].EventID)
}

func TestCatalogService_GetEvent_Found(t *testing.T) {
	service := NewCatalogService(newFakeEventRepo())

	event, err := service.GetEvent(context.Background(), "chi-2")

	assert.NoError(t, err)
	assert.Equal(t, "Deep Dish Class", event.Name)
	assert.Equal(t, 65.0, event.CostPerPerson)
}

func TestCatalogService_GetEvent_NotFound(t *testing.T) {
	service := NewCatalogService(newFakeEventRepo())

	_, err := service.GetEvent(context.Background(), "nope")

	assert.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestCatalogService_GetEvent_MalformedNumericsSurface(t *testing.T) {
	repo := newFakeEventRepo()
	repo.byCity["chicago"] = append(repo.byCity["chicago"], models.EventRecord{
		ID: "chi-broken", Name: "Mystery Outing", Category: "Games", City: "chicago",
		CostPerPerson: "call us", DurationHours: "2",
	})
	service := NewCatalogService(repo)

	_, err := service.GetEvent(context.Background(), "chi-broken")

	assert.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeDataQuality))
}

func TestCatalogService_Categories_FromUnfilteredCatalog(t *testing.T) {
	service := NewCatalogService(newFakeEventRepo())

	categories, err := service.Categories(context.Background(), models.CityChicago)

	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Culture", categories[0].Name)
	assert.Equal(t, "Food & Drink", categories[1].Name)
	// Presentation lookup attaches an icon
	assert.NotEmpty(t, categories[0].Icon)
}
