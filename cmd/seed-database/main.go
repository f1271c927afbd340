package main

import (
	"flag"
	"log"

	catalogModels "github.com/architect/city-events/internal/catalog/models"
	"github.com/architect/city-events/internal/common/database"
	favoriteModels "github.com/architect/city-events/internal/favorites/models"
	"github.com/architect/city-events/pkg/config"
)

var reset = flag.Bool("reset", false, "Drop existing events before seeding")

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.DB.AutoMigrate(
		&database.User{},
		&database.Session{},
		&catalogModels.EventRecord{},
		&favoriteModels.FavoriteRecord{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if *reset {
		if err := database.DB.Exec("DELETE FROM events").Error; err != nil {
			log.Fatalf("Failed to clear events: %v", err)
		}
	}

	log.Println("Seeding curated event catalog...")
	created := 0
	for _, event := range curatedEvents() {
		result := database.DB.Where("id = ?", event.ID).FirstOrCreate(&event)
		if result.Error != nil {
			log.Fatalf("Failed to seed event %s: %v", event.ID, result.Error)
		}
		created += int(result.RowsAffected)
	}

	log.Printf("Done: %d events created (%d already present)", created, len(curatedEvents())-created)
}

// curatedEvents returns the hand-curated catalog for both cities. Cost and
// duration keep the decorated text form the source sheets use; the catalog
// store normalizes them on load.
func curatedEvents() []catalogModels.EventRecord {
	return []catalogModels.EventRecord{
		// Chicago
		{
			ID: "chi-architecture-cruise", Name: "Architecture River Cruise", Category: "Culture",
			Description: "Guided boat tour of Chicago's riverfront architecture with a docent from the Architecture Center.",
			City:        "chicago", IdealGroupSize: "10-30", DurationHours: "1.5", CostPerPerson: "$52",
			MeetingPoint: "112 E Wacker Dr, river level", TransitTips: "Brown/Green/Orange Line to State/Lake, 5 min walk",
			BookingLink: "https://www.architecture.org/tours", BestMonths: "May through October",
			ImageURL: "https://images.cityevents.dev/chi-architecture-cruise.jpg",
		},
		{
			ID: "chi-deep-dish-class", Name: "Deep Dish Pizza Making Class", Category: "Food & Drink",
			Description: "Hands-on deep dish workshop with a pizzaiolo; everyone takes home their own pie.",
			City:        "chicago", IdealGroupSize: "8-16", DurationHours: "2 hrs", CostPerPerson: "$65",
			MeetingPoint: "River North cooking studio", BestMonths: "Year-round",
			AccessibilityNotes: "Step-free entrance, counter-height workstations",
			ImageURL:           "https://images.cityevents.dev/chi-deep-dish-class.jpg",
		},
		{
			ID: "chi-kayak-river", Name: "Chicago River Kayak Tour", Category: "Outdoor",
			Description: "Kayaking the main branch at sunset, gear and safety briefing included.",
			City:        "chicago", IdealGroupSize: "6-14", DurationHours: "2.5", CostPerPerson: "$45",
			MeetingPoint: "Kayak dock at Clark Park", TransitTips: "Blue Line to Belmont, 12 min walk",
			BookingLink: "https://kayakchicago.example.com", BestMonths: "June through September",
			ImageURL: "https://images.cityevents.dev/chi-kayak-river.jpg",
		},
		{
			ID: "chi-escape-loop", Name: "The Loop Escape Room", Category: "Games",
			Description: "Team puzzle room themed on the 1893 World's Fair; two rooms run head-to-head.",
			City:        "chicago", IdealGroupSize: "4-10", DurationHours: "1", CostPerPerson: "$34",
			MeetingPoint: "Monadnock Building lobby", BestMonths: "Year-round",
			AccessibilityNotes: "One room is wheelchair accessible",
			ImageURL:           "https://images.cityevents.dev/chi-escape-loop.jpg",
		},
		{
			ID: "chi-art-institute", Name: "Art Institute Scavenger Hunt", Category: "Culture",
			Description: "Self-guided scavenger hunt across the Art Institute's collection with team scorecards.",
			City:        "chicago", IdealGroupSize: "10-40", DurationHours: "2", CostPerPerson: "$32",
			MeetingPoint: "Michigan Ave lion statues", TransitTips: "Any Loop line to Adams/Wabash",
			BestMonths: "Year-round", ImageURL: "https://images.cityevents.dev/chi-art-institute.jpg",
		},
		{
			ID: "chi-curling-intro", Name: "Learn-to-Curl Session", Category: "Sports",
			Description: "Two-hour introduction to curling with league coaches, broom and stone time for all.",
			City:        "chicago", IdealGroupSize: "8-24", DurationHours: "2", CostPerPerson: "$40",
			MeetingPoint: "Windy City Curling Club", BestMonths: "October through March",
			ImageURL: "https://images.cityevents.dev/chi-curling-intro.jpg",
		},
		{
			ID: "chi-pottery-night", Name: "Pottery Wheel Night", Category: "Arts & Crafts",
			Description: "BYOB wheel-throwing night; pieces are fired and shipped to the office.",
			City:        "chicago", IdealGroupSize: "6-12", DurationHours: "2", CostPerPerson: "$58",
			MeetingPoint: "Pilsen ceramics studio", TransitTips: "Pink Line to 18th",
			BestMonths: "Year-round", ImageURL: "https://images.cityevents.dev/chi-pottery-night.jpg",
		},
		{
			ID: "chi-lakefront-ride", Name: "Lakefront Trail Bike Ride", Category: "Outdoor",
			Description: "Guided group ride along 18 miles of lakefront with a picnic stop at Montrose Harbor.",
			City:        "chicago", IdealGroupSize: "6-20", DurationHours: "3", CostPerPerson: "$30",
			MeetingPoint: "Navy Pier bike rental kiosk", BestMonths: "May through September",
			ImageURL: "https://images.cityevents.dev/chi-lakefront-ride.jpg",
		},
		{
			ID: "chi-trivia-brewery", Name: "Brewery Trivia Night", Category: "Games",
			Description: "Private trivia night at a Logan Square brewery, custom rounds about your team.",
			City:        "chicago", IdealGroupSize: "10-50", DurationHours: "2", CostPerPerson: "$25",
			MeetingPoint: "Logan Square brewery taproom", TransitTips: "Blue Line to Logan Square",
			BestMonths: "Year-round", ImageURL: "https://images.cityevents.dev/chi-trivia-brewery.jpg",
		},
		{
			ID: "chi-yoga-rooftop", Name: "Rooftop Yoga Hour", Category: "Wellness",
			Description: "Morning flow on a West Loop rooftop, mats provided, cold brew after.",
			City:        "chicago", IdealGroupSize: "8-25", DurationHours: "1", CostPerPerson: "$22",
			MeetingPoint: "West Loop rooftop deck, Fulton Market", BestMonths: "June through September",
			AccessibilityNotes: "Elevator access to roof",
			ImageURL:           "https://images.cityevents.dev/chi-yoga-rooftop.jpg",
		},
		// Minneapolis
		{
			ID: "msp-lakes-paddle", Name: "Chain of Lakes Paddleboard Outing", Category: "Outdoor",
			Description: "Paddleboarding on Bde Maka Ska with instructors; beginners welcome.",
			City:        "minneapolis", IdealGroupSize: "6-16", DurationHours: "2", CostPerPerson: "$38",
			MeetingPoint: "Bde Maka Ska boat launch", BestMonths: "June through August",
			ImageURL: "https://images.cityevents.dev/msp-lakes-paddle.jpg",
		},
		{
			ID: "msp-mill-city-tour", Name: "Mill City Museum Tour", Category: "Culture",
			Description: "Flour tower tour and baking lab at the ruins of the Washburn A Mill.",
			City:        "minneapolis", IdealGroupSize: "10-30", DurationHours: "1.5", CostPerPerson: "$18",
			MeetingPoint: "Mill City Museum lobby", TransitTips: "Blue/Green Line to U.S. Bank Stadium",
			BookingLink: "https://www.mnhs.org/millcity", BestMonths: "Year-round",
			AccessibilityNotes: "Fully accessible",
			ImageURL:           "https://images.cityevents.dev/msp-mill-city-tour.jpg",
		},
		{
			ID: "msp-curling-club", Name: "Curling at the St. Paul Club", Category: "Sports",
			Description: "Private sheet rental with instruction; broomstacking social afterward.",
			City:        "minneapolis", IdealGroupSize: "8-16", DurationHours: "2", CostPerPerson: "$42",
			MeetingPoint: "St. Paul Curling Club", BestMonths: "October through April",
			ImageURL: "https://images.cityevents.dev/msp-curling-club.jpg",
		},
		{
			ID: "msp-juicy-lucy-crawl", Name: "Juicy Lucy Burger Crawl", Category: "Food & Drink",
			Description: "Three-stop tasting crawl of the cheese-stuffed burger institutions, with a blind vote.",
			City:        "minneapolis", IdealGroupSize: "8-14", DurationHours: "3", CostPerPerson: "$48",
			MeetingPoint: "Matt's Bar, Cedar Ave", TransitTips: "Route 23 bus stops outside",
			BestMonths: "Year-round", ImageURL: "https://images.cityevents.dev/msp-juicy-lucy-crawl.jpg",
		},
		{
			ID: "msp-axe-throwing", Name: "Axe Throwing League Night", Category: "Games",
			Description: "Coached axe throwing lanes in Northeast, round-robin team tournament.",
			City:        "minneapolis", IdealGroupSize: "6-24", DurationHours: "1.5", CostPerPerson: "$35",
			MeetingPoint: "Northeast axe house", BestMonths: "Year-round",
			ImageURL: "https://images.cityevents.dev/msp-axe-throwing.jpg",
		},
		{
			ID: "msp-glass-blowing", Name: "Glass Blowing Workshop", Category: "Arts & Crafts",
			Description: "Each person shapes a glass float with a gaffer in the Northrup King Building.",
			City:        "minneapolis", IdealGroupSize: "4-10", DurationHours: "2.5", CostPerPerson: "$75",
			MeetingPoint: "Northrup King Building, studio 332", BestMonths: "September through May",
			ImageURL: "https://images.cityevents.dev/msp-glass-blowing.jpg",
		},
		{
			ID: "msp-stone-arch-walk", Name: "Stone Arch Bridge History Walk", Category: "Culture",
			Description: "Guided walk across the Stone Arch Bridge and St. Anthony Falls with a local historian.",
			City:        "minneapolis", IdealGroupSize: "8-30", DurationHours: "1.5", CostPerPerson: "$15",
			MeetingPoint: "Father Hennepin Bluff Park", BestMonths: "May through October",
			AccessibilityNotes: "Paved, step-free route",
			ImageURL:           "https://images.cityevents.dev/msp-stone-arch-walk.jpg",
		},
		{
			ID: "msp-forest-bathing", Name: "Forest Bathing at Theodore Wirth", Category: "Wellness",
			Description: "Guided slow walk through the Wirth woods with breathing and observation practice.",
			City:        "minneapolis", IdealGroupSize: "6-15", DurationHours: "2", CostPerPerson: "$28",
			MeetingPoint: "Theodore Wirth trailhead lot", BestMonths: "May through October",
			ImageURL: "https://images.cityevents.dev/msp-forest-bathing.jpg",
		},
		{
			ID: "msp-boat-cruise", Name: "Mississippi Paddleboat Cruise", Category: "Outdoor",
			Description: "Private deck on a paddleboat cruise through the lock and dam, narration included.",
			City:        "minneapolis", IdealGroupSize: "20-60", DurationHours: "2", CostPerPerson: "$36",
			MeetingPoint: "Bohemian Flats Park dock", BestMonths: "June through September",
			ImageURL: "https://images.cityevents.dev/msp-boat-cruise.jpg",
		},
	}
}
