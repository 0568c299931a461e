package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/internal/config"
	"github.com/rowanhale/tripsmith/pkg/clients/sheetsclient"
	"github.com/rowanhale/tripsmith/pkg/db"
)

// ItineraryPublisher defines the sheets operations needed for publishing an
// itinerary
type ItineraryPublisher interface {
	PublishItinerary(spreadsheetID string, published *sheetsclient.PublishedItinerary) error
}

// PublishItineraryStore defines the database operations needed for
// publishing an itinerary
type PublishItineraryStore interface {
	GetTrips(ctx context.Context) ([]db.Trip, error)
	GetActivities(ctx context.Context) ([]db.Activity, error)
	GetPlacements(ctx context.Context, tripID string) ([]db.Placement, error)
}

// PublishItineraryResult contains the publish results
type PublishItineraryResult struct {
	Trip      *db.Trip
	SheetID   string
	Published *sheetsclient.PublishedItinerary
}

// PublishItinerary builds the spreadsheet rows for a trip's saved itinerary
// and writes them to the itinerary sheet. It fetches the trip, its
// placements and the catalog, then constructs one row per scheduled
// activity with formatted day and block labels. Overflow activities come
// last under an "Overflow" day label.
// If tripID is empty, it defaults to the most recently created trip.
func PublishItinerary(
	ctx context.Context,
	database PublishItineraryStore,
	publisher ItineraryPublisher,
	cfg *config.Config,
	logger *zap.Logger,
	tripID string,
) (*PublishItineraryResult, error) {
	logger.Debug("Starting publishItinerary", zap.String("trip_id", tripID))

	// Step 1: Fetch the target trip
	logger.Debug("Fetching trips")
	trips, err := database.GetTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %w", err)
	}

	targetTrip, err := resolveTrip(trips, tripID)
	if err != nil {
		return nil, err
	}

	logger.Debug("Found target trip",
		zap.String("id", targetTrip.ID),
		zap.String("name", targetTrip.Name),
		zap.String("start", targetTrip.StartDate))

	// Step 2: Calculate day dates
	dayDates, err := calculateDayDates(targetTrip.StartDate, targetTrip.DaysCount)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate day dates: %w", err)
	}

	// Step 3: Fetch the saved placements
	logger.Debug("Fetching placements")
	placements, err := database.GetPlacements(ctx, targetTrip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch placements: %w", err)
	}

	if len(placements) == 0 {
		return nil, fmt.Errorf("no itinerary built for trip %s - please run buildItinerary first", targetTrip.ID)
	}

	// Step 4: Resolve placements against the catalog
	activities, err := database.GetActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	byID := activitiesByID(activities)

	days, overflow, err := assembleDayViews(targetTrip.DaysCount, dayDates, placements, byID)
	if err != nil {
		return nil, err
	}

	// Step 5: Build the published itinerary rows. Empty blocks are skipped;
	// the sheet only carries rows with something scheduled.
	rows := make([]sheetsclient.PublishedItineraryRow, 0, len(placements))

	for _, day := range days {
		dayLabel := fmt.Sprintf("Day %d - %s", day.Index+1, day.Date.Format("Mon Jan 02 2006"))
		for _, block := range day.Blocks {
			for _, item := range block.Items {
				rows = append(rows, sheetsclient.PublishedItineraryRow{
					Day:      dayLabel,
					Block:    blockTitle(block.Block),
					Activity: item.Name,
					Category: item.Category,
					Duration: fmt.Sprintf("%d mins", item.DurationMins),
					Booking:  bookingNote(item),
				})
			}
		}
	}

	for _, item := range overflow {
		rows = append(rows, sheetsclient.PublishedItineraryRow{
			Day:      "Overflow",
			Block:    "",
			Activity: item.Name,
			Category: item.Category,
			Duration: fmt.Sprintf("%d mins", item.DurationMins),
			Booking:  bookingNote(item),
		})
	}

	published := &sheetsclient.PublishedItinerary{
		TripName:  targetTrip.Name,
		StartDate: targetTrip.StartDate,
		DaysCount: targetTrip.DaysCount,
		Rows:      rows,
	}

	// Step 6: Write to the itinerary sheet
	logger.Info("Publishing itinerary to Google Sheets",
		zap.String("trip_id", targetTrip.ID),
		zap.String("sheet_id", cfg.ItinerarySheetID),
		zap.Int("rows", len(rows)))

	if err := publisher.PublishItinerary(cfg.ItinerarySheetID, published); err != nil {
		return nil, fmt.Errorf("failed to publish itinerary: %w", err)
	}

	logger.Info("Itinerary published successfully", zap.String("trip_id", targetTrip.ID))

	return &PublishItineraryResult{
		Trip:      targetTrip,
		SheetID:   cfg.ItinerarySheetID,
		Published: published,
	}, nil
}

// bookingNote returns the booking column value for an itinerary row: the
// booking URL when known, a reminder when booking is required without one
func bookingNote(item ItineraryItemView) string {
	if item.BookingURL != "" {
		return item.BookingURL
	}
	if item.MustBook {
		return "Book ahead"
	}
	return ""
}
