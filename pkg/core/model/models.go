package model

// ActivityStatus marks whether a catalog entry is offered to travellers
type ActivityStatus string

const (
	StatusActive  ActivityStatus = "Active"
	StatusRetired ActivityStatus = "Retired"
)

// IsValid checks if the status is a valid value
func (s ActivityStatus) IsValid() bool {
	return s == StatusActive || s == StatusRetired
}

// Activity represents a catalog entry parsed from the activities sheet
type Activity struct {
	ActivityID   string
	Name         string
	Category     string // "food", "culture", "nature", "night", "shopping"
	DurationMins int
	PriceTier    int    // 1-4, 0 if the sheet leaves it blank
	Neighborhood string // Empty string if no neighborhood
	Lat          float64
	Lng          float64
	OpenWindows  []string // Block labels; empty means the category default applies
	MustBook     bool
	Popularity   *int // Nil when the sheet cell is blank
	Status       ActivityStatus
	BookingURL   string // Empty string if nothing to book
}
