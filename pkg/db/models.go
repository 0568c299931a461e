package db

// Activity is a catalog entry persisted by a catalog import
type Activity struct {
	ID           string
	Name         string
	Category     string
	DurationMins int
	PriceTier    int
	Neighborhood string
	Lat          float64
	Lng          float64
	OpenWindows  []string // Block labels; empty means the category default applies
	MustBook     bool
	Popularity   *int // Nil when the catalog left the cell blank
	Status       string
	BookingURL   string
}

// Trip represents a planned trip record
type Trip struct {
	ID              string
	Name            string
	StartDate       string // Date in YYYY-MM-DD format
	DaysCount       int
	CreatedDatetime string // RFC3339 format
	BuiltDatetime   string // RFC3339 format, empty if no itinerary built yet
}

// Selection records an activity chosen for a trip
type Selection struct {
	ID         string
	TripID     string
	ActivityID string
	Position   int // Order the activity was selected in, starting at 0
}

// Placement is one scheduled or overflowed activity of a built itinerary
type Placement struct {
	ID         string
	TripID     string
	ActivityID string
	DayIndex   int    // -1 for overflow rows
	Block      string // "morning", "afternoon", "evening" or "overflow"
	Slot       int    // Position within the block, starting at 0
}
