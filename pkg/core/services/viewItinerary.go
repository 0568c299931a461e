package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/core/itinerary"
	"github.com/rowanhale/tripsmith/pkg/db"
)

// ItineraryItemView is a single scheduled or overflowed activity resolved
// against the catalog for display
type ItineraryItemView struct {
	ActivityID   string
	Name         string
	Category     string
	DurationMins int
	MustBook     bool
	BookingURL   string
}

// ItineraryBlockView groups the activities scheduled into one time block
type ItineraryBlockView struct {
	Block string // "morning", "afternoon" or "evening"
	Items []ItineraryItemView
}

// ItineraryDayView is one day of a built itinerary with its calendar date.
// All three blocks are always present, empty or not.
type ItineraryDayView struct {
	Index  int
	Date   time.Time
	Blocks []ItineraryBlockView
}

// ViewItineraryResult contains a built itinerary resolved for display
type ViewItineraryResult struct {
	Trip     *db.Trip
	DayDates []time.Time
	Days     []ItineraryDayView
	Overflow []ItineraryItemView
}

// ViewItineraryStore defines the database operations needed for viewing an itinerary
type ViewItineraryStore interface {
	GetTrips(ctx context.Context) ([]db.Trip, error)
	GetActivities(ctx context.Context) ([]db.Activity, error)
	GetPlacements(ctx context.Context, tripID string) ([]db.Placement, error)
}

// ViewItinerary loads the saved placements for a trip and resolves them
// against the activity catalog. tripID may be empty to target the most
// recently created trip.
func ViewItinerary(
	ctx context.Context,
	database ViewItineraryStore,
	logger *zap.Logger,
	tripID string,
) (*ViewItineraryResult, error) {
	logger.Debug("Starting viewItinerary", zap.String("trip_id", tripID))

	// Step 1: DB query - Fetch trips and resolve the target
	trips, err := database.GetTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %w", err)
	}

	targetTrip, err := resolveTrip(trips, tripID)
	if err != nil {
		return nil, err
	}

	logger.Debug("Target trip",
		zap.String("id", targetTrip.ID),
		zap.String("name", targetTrip.Name))

	dayDates, err := calculateDayDates(targetTrip.StartDate, targetTrip.DaysCount)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate day dates: %w", err)
	}

	// Step 2: DB query - Fetch the saved placements
	logger.Debug("Fetching placements")
	placements, err := database.GetPlacements(ctx, targetTrip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch placements: %w", err)
	}
	logger.Debug("Found placements", zap.Int("count", len(placements)))

	if len(placements) == 0 {
		return nil, fmt.Errorf("no itinerary built for trip %s - please run buildItinerary first", targetTrip.ID)
	}

	// Step 3: DB query - Fetch the catalog to resolve activity details
	activities, err := database.GetActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	byID := activitiesByID(activities)

	// Step 4: Group placements into per-day block views
	days, overflow, err := assembleDayViews(targetTrip.DaysCount, dayDates, placements, byID)
	if err != nil {
		return nil, err
	}

	logger.Info("Itinerary resolved",
		zap.String("trip_id", targetTrip.ID),
		zap.Int("days", len(days)),
		zap.Int("overflow", len(overflow)))

	return &ViewItineraryResult{
		Trip:     targetTrip,
		DayDates: dayDates,
		Days:     days,
		Overflow: overflow,
	}, nil
}

// assembleDayViews groups saved placements into per-day block views in slot
// order, resolving each activity against the catalog lookup. Overflow
// placements (day index -1) come back separately.
func assembleDayViews(
	daysCount int,
	dayDates []time.Time,
	placements []db.Placement,
	byID map[string]db.Activity,
) ([]ItineraryDayView, []ItineraryItemView, error) {
	type blockKey struct {
		day   int
		block string
	}

	grouped := make(map[blockKey][]db.Placement)
	overflowPlacements := make([]db.Placement, 0)

	for _, placement := range placements {
		if placement.DayIndex < 0 {
			overflowPlacements = append(overflowPlacements, placement)
			continue
		}
		key := blockKey{day: placement.DayIndex, block: placement.Block}
		grouped[key] = append(grouped[key], placement)
	}

	for key := range grouped {
		group := grouped[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Slot < group[j].Slot
		})
	}
	sort.SliceStable(overflowPlacements, func(i, j int) bool {
		return overflowPlacements[i].Slot < overflowPlacements[j].Slot
	})

	days := make([]ItineraryDayView, 0, daysCount)
	for dayIndex := 0; dayIndex < daysCount; dayIndex++ {
		day := ItineraryDayView{
			Index:  dayIndex,
			Date:   dayDates[dayIndex],
			Blocks: make([]ItineraryBlockView, 0, 3),
		}

		for _, block := range itinerary.AllBlocks() {
			view := ItineraryBlockView{
				Block: block.String(),
				Items: make([]ItineraryItemView, 0),
			}
			for _, placement := range grouped[blockKey{day: dayIndex, block: block.String()}] {
				item, err := resolveItemView(placement, byID)
				if err != nil {
					return nil, nil, err
				}
				view.Items = append(view.Items, item)
			}
			day.Blocks = append(day.Blocks, view)
		}

		days = append(days, day)
	}

	overflow := make([]ItineraryItemView, 0, len(overflowPlacements))
	for _, placement := range overflowPlacements {
		item, err := resolveItemView(placement, byID)
		if err != nil {
			return nil, nil, err
		}
		overflow = append(overflow, item)
	}

	return days, overflow, nil
}

// resolveItemView looks up a placement's activity in the catalog
func resolveItemView(placement db.Placement, byID map[string]db.Activity) (ItineraryItemView, error) {
	record, ok := byID[placement.ActivityID]
	if !ok {
		return ItineraryItemView{}, fmt.Errorf("placement references unknown activity %s - reimport the catalog", placement.ActivityID)
	}

	return ItineraryItemView{
		ActivityID:   record.ID,
		Name:         record.Name,
		Category:     record.Category,
		DurationMins: record.DurationMins,
		MustBook:     record.MustBook,
		BookingURL:   record.BookingURL,
	}, nil
}
