package services

import (
	"strconv"
	"strings"

	"github.com/architect/city-events/internal/catalog/models"
	"github.com/architect/city-events/internal/common/errors"
)

// DataQualityIssue records a catalog record excluded because a numeric
// field could not be coerced. Scoped to the offending record; never fatal
// to the rest of the catalog.
type DataQualityIssue struct {
	EventID string `json:"event_id"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

// Err converts the issue to the shared error taxonomy for reporting
func (i DataQualityIssue) Err() *errors.AppError {
	return errors.DataQuality(i.EventID, i.Field, i.Value)
}

// NormalizeRecord translates a persisted event record into the normalized
// Event the filter engine sees. The curated source stores numeric fields as
// text ("$25", "2.5 hrs"), so cost and duration are coerced here; a value
// that cannot be coerced yields a data-quality issue and the event is
// excluded rather than silently treated as zero.
func NormalizeRecord(record models.EventRecord) (models.Event, []DataQualityIssue) {
	var issues []DataQualityIssue

	cost, ok := parseNumeric(record.CostPerPerson)
	if !ok {
		issues = append(issues, DataQualityIssue{EventID: record.ID, Field: "cost_per_person", Value: record.CostPerPerson})
	}

	duration, ok := parseNumeric(record.DurationHours)
	if !ok {
		issues = append(issues, DataQualityIssue{EventID: record.ID, Field: "duration_hours", Value: record.DurationHours})
	}

	if len(issues) > 0 {
		return models.Event{}, issues
	}

	return models.Event{
		ID:                 record.ID,
		Name:               record.Name,
		Category:           record.Category,
		Description:        record.Description,
		City:               models.City(record.City),
		IdealGroupSize:     record.IdealGroupSize,
		DurationHours:      duration,
		CostPerPerson:      cost,
		MeetingPoint:       record.MeetingPoint,
		TransitTips:        record.TransitTips,
		BookingLink:        record.BookingLink,
		BestMonths:         record.BestMonths,
		AccessibilityNotes: record.AccessibilityNotes,
		ImageURL:           record.ImageURL,
	}, nil
}

// NormalizeCatalog translates a full listing, preserving the incoming
// (name-sorted) order. Malformed records are dropped and their issues
// collected for reporting; the rest of the catalog is unaffected.
func NormalizeCatalog(records []models.EventRecord) ([]models.Event, []DataQualityIssue) {
	events := make([]models.Event, 0, len(records))
	var issues []DataQualityIssue

	for _, record := range records {
		event, recordIssues := NormalizeRecord(record)
		if len(recordIssues) > 0 {
			issues = append(issues, recordIssues...)
			continue
		}
		events = append(events, event)
	}
	return events, issues
}

// parseNumeric coerces a persisted numeric field to a non-negative float.
// Accepts plain numbers plus the decorations the source data carries:
// currency prefixes, thousands separators and trailing unit words.
func parseNumeric(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	// "2.5 hrs" → "2.5"
	if fields := strings.Fields(cleaned); len(fields) > 0 {
		cleaned = fields[0]
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}
