package e2e

import (
	itinerary "github.com/rowanhale/tripsmith/pkg/core/itinerary"
)

// Type aliases to avoid prefixing everything with itinerary.
type (
	Activity        = itinerary.Activity
	Category        = itinerary.Category
	TimeBlock       = itinerary.TimeBlock
	BlockCapacities = itinerary.BlockCapacities
	ScheduledItem   = itinerary.ScheduledItem
	Day             = itinerary.Day
	Itinerary       = itinerary.Itinerary
	Plan            = itinerary.Plan
	DayOverride     = itinerary.DayOverride
)

// Constant and function aliases
const (
	CategoryFood     = itinerary.CategoryFood
	CategoryCulture  = itinerary.CategoryCulture
	CategoryNature   = itinerary.CategoryNature
	CategoryNight    = itinerary.CategoryNight
	CategoryShopping = itinerary.CategoryShopping

	BlockMorning   = itinerary.BlockMorning
	BlockAfternoon = itinerary.BlockAfternoon
	BlockEvening   = itinerary.BlockEvening
)

var (
	Build             = itinerary.Build
	BuildPlan         = itinerary.BuildPlan
	Validate          = itinerary.Validate
	AllBlocks         = itinerary.AllBlocks
	DefaultCapacities = itinerary.DefaultCapacities
)
