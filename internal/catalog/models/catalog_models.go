package models

import "time"

// City identifies a supported catalog city
type City string

const (
	CityChicago     City = "chicago"
	CityMinneapolis City = "minneapolis"
)

// Valid reports whether the city is one the catalog serves
func (c City) Valid() bool {
	return c == CityChicago || c == CityMinneapolis
}

// EventRecord is the persisted shape of an event. Numeric fields are stored
// as text because the curated source data carries values like "$25" or
// "2.5 hrs"; normalization into Event happens in the catalog store.
type EventRecord struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null;index" json:"name"`
	Category           string    `gorm:"index" json:"category"`
	Description        string    `gorm:"type:text" json:"description"`
	City               string    `gorm:"index;not null" json:"city"`
	IdealGroupSize     string    `json:"ideal_group_size"`
	DurationHours      string    `json:"duration_hours"`
	CostPerPerson      string    `json:"cost_per_person"`
	MeetingPoint       string    `json:"meeting_point"`
	TransitTips        string    `json:"transit_tips"`
	BookingLink        string    `json:"booking_link"`
	BestMonths         string    `json:"best_months"`
	AccessibilityNotes string    `json:"accessibility_notes"`
	ImageURL           string    `json:"image_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (EventRecord) TableName() string {
	return "events"
}

// Event is the normalized catalog entry the filter engine operates on.
// Immutable once loaded.
type Event struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	City               City    `json:"city"`
	IdealGroupSize     string  `json:"ideal_group_size"`
	DurationHours      float64 `json:"duration_hours"`
	CostPerPerson      float64 `json:"cost_per_person"`
	MeetingPoint       string  `json:"meeting_point"`
	TransitTips        string  `json:"transit_tips,omitempty"`
	BookingLink        string  `json:"booking_link,omitempty"`
	BestMonths         string  `json:"best_months"`
	AccessibilityNotes string  `json:"accessibility_notes,omitempty"`
	ImageURL           string  `json:"image_url"`
}

// Range is an inclusive [Min, Max] numeric constraint
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v falls inside the range, bounds inclusive
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Filter state defaults
const (
	DefaultCostMin     = 0
	DefaultCostMax     = 100
	DefaultDurationMin = 0
	DefaultDurationMax = 5
)

// FilterState holds the user-controlled constraints applied to a catalog.
// An empty SelectedCategories means no category restriction.
type FilterState struct {
	SearchQuery        string   `json:"search_query"`
	SelectedCategories []string `json:"selected_categories"`
	CostRange          Range    `json:"cost_range"`
	DurationRange      Range    `json:"duration_range"`
}

// DefaultFilterState returns the initial, unrestricted-except-ranges state
func DefaultFilterState() FilterState {
	return FilterState{
		SearchQuery:        "",
		SelectedCategories: nil,
		CostRange:          Range{Min: DefaultCostMin, Max: DefaultCostMax},
		DurationRange:      Range{Min: DefaultDurationMin, Max: DefaultDurationMax},
	}
}

// Reset restores the default filter state in place
func (f *FilterState) Reset() {
	*f = DefaultFilterState()
}

// CategoryInfo pairs a category value with its presentation lookup
type CategoryInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Presentation lookup for known categories. Never consulted by the filter
// engine; unknown categories fall back rather than crash.
var categoryDisplays = map[string]CategoryInfo{
	"Food & Drink":  {Name: "Food & Drink", Label: "Food & Drink", Icon: "utensils"},
	"Outdoor":       {Name: "Outdoor", Label: "Outdoor & Adventure", Icon: "tree"},
	"Arts & Crafts": {Name: "Arts & Crafts", Label: "Arts & Crafts", Icon: "palette"},
	"Games":         {Name: "Games", Label: "Games & Trivia", Icon: "dice"},
	"Sports":        {Name: "Sports", Label: "Sports & Active", Icon: "trophy"},
	"Culture":       {Name: "Culture", Label: "Culture & Museums", Icon: "landmark"},
	"Wellness":      {Name: "Wellness", Label: "Wellness", Icon: "leaf"},
}

// DisplayForCategory returns the presentation info for a category, with a
// generic fallback for categories not in the lookup.
func DisplayForCategory(category string) CategoryInfo {
	if info, ok := categoryDisplays[category]; ok {
		return info
	}
	return CategoryInfo{Name: category, Label: category, Icon: "map-pin"}
}

// API request/response DTOs

// ListEventsQuery binds the catalog listing query parameters
type ListEventsQuery struct {
	City        string   `form:"city" binding:"required"`
	Search      string   `form:"search"`
	Categories  []string `form:"categories"`
	CostMin     *float64 `form:"cost_min"`
	CostMax     *float64 `form:"cost_max"`
	DurationMin *float64 `form:"duration_min"`
	DurationMax *float64 `form:"duration_max"`
}

// ListEventsResponse carries the visible set plus catalog bookkeeping
type ListEventsResponse struct {
	City         City    `json:"city"`
	Events       []Event `json:"events"`
	Total        int     `json:"total"`
	CatalogTotal int     `json:"catalog_total"`
	Excluded     int     `json:"excluded,omitempty"` // data-quality exclusions in the catalog
}

// CategoriesResponse lists the category universe for a city
type CategoriesResponse struct {
	City       City           `json:"city"`
	Categories []CategoryInfo `json:"categories"`
}
