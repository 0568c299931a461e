package itinerary

// Category classifies a catalog activity. The category drives the default
// block-preference order and the same-day clustering bonus.
type Category string

const (
	CategoryFood     Category = "food"
	CategoryCulture  Category = "culture"
	CategoryNature   Category = "nature"
	CategoryNight    Category = "night"
	CategoryShopping Category = "shopping"
)

// TimeBlock identifies one of a day's three fixed scheduling windows.
// Values are contiguous from zero so per-block data can live in fixed-size
// arrays with compile-time exhaustiveness and a guaranteed iteration order,
// which a map keyed by label would not give.
type TimeBlock int

const (
	BlockMorning TimeBlock = iota
	BlockAfternoon
	BlockEvening

	numBlocks = 3
)

var blockNames = [numBlocks]string{"morning", "afternoon", "evening"}

func (b TimeBlock) String() string {
	if !b.valid() {
		return "unknown"
	}
	return blockNames[b]
}

func (b TimeBlock) valid() bool {
	return b >= 0 && b < numBlocks
}

// ParseTimeBlock maps a block label to its TimeBlock value.
func ParseTimeBlock(label string) (TimeBlock, bool) {
	for i, name := range blockNames {
		if name == label {
			return TimeBlock(i), true
		}
	}
	return 0, false
}

// AllBlocks returns every time block in chronological order.
func AllBlocks() []TimeBlock {
	return []TimeBlock{BlockMorning, BlockAfternoon, BlockEvening}
}

// BlockCapacities holds per-block budgets in minutes, indexed by TimeBlock.
type BlockCapacities [numBlocks]int

// DefaultCapacities returns the standard block budgets: three hours in the
// morning, four in the afternoon, three in the evening.
func DefaultCapacities() BlockCapacities {
	return BlockCapacities{180, 240, 180}
}

// Activity is a single selectable catalog entry. Activities are read-only
// inputs; the builder never mutates them.
type Activity struct {
	ID           string
	Name         string
	Category     Category
	DurationMins int
	PriceTier    int
	Neighborhood string
	Lat          float64
	Lng          float64

	// OpenWindows, when non-empty, is the explicit allowed-block order and
	// overrides the category default verbatim.
	OpenWindows []TimeBlock

	// MustBook marks activities that need advance booking. They are ranked
	// ahead of flexible ones so they claim capacity first.
	MustBook bool

	// Popularity is the optional 0-100 score; nil means unknown and is
	// treated as the 50-point midpoint.
	Popularity *int
}

// ScheduledItem pins an activity to the block it was placed into. A given
// input activity appears in at most one ScheduledItem across the whole
// result.
type ScheduledItem struct {
	Activity Activity
	Block    TimeBlock
}

// Day is one day of the itinerary under construction. The day exclusively
// owns the ordered item lists in its blocks; items appear in placement
// (priority) order, not necessarily chronological order within a block.
type Day struct {
	// Index is the 0-based position of the day in the trip.
	Index int

	// Anchor is the neighborhood assigned to this day to encourage spatial
	// clustering. Empty when the day has no anchor.
	Anchor string

	// Blocks holds the scheduled items per time block.
	Blocks [numBlocks][]ScheduledItem

	// Remaining tracks the unconsumed capacity per time block in minutes.
	Remaining BlockCapacities
}

// UsedMinutes sums the scheduled durations across all three blocks.
func (d *Day) UsedMinutes() int {
	used := 0
	for b := range d.Blocks {
		for _, item := range d.Blocks[b] {
			used += item.Activity.DurationMins
		}
	}
	return used
}

// HasCategory reports whether the day already holds at least one scheduled
// item of the given category.
func (d *Day) HasCategory(c Category) bool {
	for b := range d.Blocks {
		for _, item := range d.Blocks[b] {
			if item.Activity.Category == c {
				return true
			}
		}
	}
	return false
}

// Itinerary is the complete result of one build: exactly daysCount days plus
// the activities that could not be placed, in the order they failed.
type Itinerary struct {
	Days     []Day
	Overflow []Activity
}

// DayOverride replaces the block capacities of a single day before
// placement starts. Out-of-range day indices are ignored.
type DayOverride struct {
	DayIndex   int
	Capacities BlockCapacities
}

// Plan is the full input to a build. The zero values of the optional fields
// reproduce the plain Build behavior.
type Plan struct {
	// Activities in caller order. All ranking tie-breaks fall back to this
	// order, so a fixed order gives byte-identical results.
	Activities []Activity

	// DaysCount is the number of days to schedule. Values below one yield
	// no days and every activity overflows.
	DaysCount int

	// Capacities, when non-nil, replaces the default block budgets for
	// every day.
	Capacities *BlockCapacities

	// DayOverrides adjust individual days after Capacities is applied.
	DayOverrides []DayOverride
}
