package services

import (
	"testing"

	"github.com/architect/city-events/internal/catalog/models"
	"github.com/stretchr/testify/assert"
)

func validRecord() models.EventRecord {
	return models.EventRecord{
		ID: "chi-kayak-river", Name: "Chicago River Kayak Tour", Category: "Outdoor",
		Description: "Kayaking the main branch", City: "chicago",
		DurationHours: "2.5", CostPerPerson: "$45",
	}
}

func TestNormalizeRecord_PlainNumbers(t *testing.T) {
	record := validRecord()
	record.CostPerPerson = "45"
	record.DurationHours = "2.5"

	event, issues := NormalizeRecord(record)

	assert.Empty(t, issues)
	assert.Equal(t, 45.0, event.CostPerPerson)
	assert.Equal(t, 2.5, event.DurationHours)
	assert.Equal(t, models.CityChicago, event.City)
}

func TestNormalizeRecord_DecoratedNumbers(t *testing.T) {
	record := validRecord()
	record.CostPerPerson = "$1,200"
	record.DurationHours = "2 hrs"

	event, issues := NormalizeRecord(record)

	assert.Empty(t, issues)
	assert.Equal(t, 1200.0, event.CostPerPerson)
	assert.Equal(t, 2.0, event.DurationHours)
}

func TestNormalizeRecord_MalformedCost_ReportsIssue(t *testing.T) {
	record := validRecord()
	record.CostPerPerson = "call for pricing"

	_, issues := NormalizeRecord(record)

	assert.Len(t, issues, 1)
	assert.Equal(t, "cost_per_person", issues[0].Field)
	assert.Equal(t, "chi-kayak-river", issues[0].EventID)
}

func TestNormalizeRecord_EmptyDuration_NotTreatedAsZero(t *testing.T) {
	record := validRecord()
	record.DurationHours = ""

	_, issues := NormalizeRecord(record)

	assert.Len(t, issues, 1)
	assert.Equal(t, "duration_hours", issues[0].Field)
}

func TestNormalizeRecord_NegativeCost_Rejected(t *testing.T) {
	record := validRecord()
	record.CostPerPerson = "-10"

	_, issues := NormalizeRecord(record)

	assert.Len(t, issues, 1)
}

func TestNormalizeRecord_BothFieldsMalformed(t *testing.T) {
	record := validRecord()
	record.CostPerPerson = "??"
	record.DurationHours = "varies"

	_, issues := NormalizeRecord(record)

	assert.Len(t, issues, 2)
}

func TestNormalizeCatalog_ExcludesMalformedKeepsRest(t *testing.T) {
	good := validRecord()
	bad := validRecord()
	bad.ID = "chi-broken"
	bad.CostPerPerson = "varies"
	tail := validRecord()
	tail.ID = "chi-tail"

	events, issues := NormalizeCatalog([]models.EventRecord{good, bad, tail})

	assert.Equal(t, []string{"chi-kayak-river", "chi-tail"}, eventIDs(events))
	assert.Len(t, issues, 1)
	assert.Equal(t, "chi-broken", issues[0].EventID)
}

func TestDataQualityIssue_Err(t *testing.T) {
	issue := DataQualityIssue{EventID: "chi-broken", Field: "cost_per_person", Value: "varies"}

	err := issue.Err()

	assert.Equal(t, "DATA_QUALITY_ERROR", err.Code)
	assert.Contains(t, err.Message, "chi-broken")
}
