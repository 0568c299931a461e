package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/core/itinerary"
	"github.com/rowanhale/tripsmith/pkg/db"
)

// resolveTrip returns the trip with the given ID, or the most recently
// created trip when tripID is empty
func resolveTrip(trips []db.Trip, tripID string) (*db.Trip, error) {
	if len(trips) == 0 {
		return nil, fmt.Errorf("no trips found - please create a trip first")
	}

	if tripID == "" {
		return findLatestTrip(trips), nil
	}

	for i := range trips {
		if trips[i].ID == tripID {
			return &trips[i], nil
		}
	}

	return nil, fmt.Errorf("no trip found with ID %s", tripID)
}

// findLatestTrip finds the trip with the most recent created datetime
func findLatestTrip(trips []db.Trip) *db.Trip {
	if len(trips) == 0 {
		return nil
	}

	latest := &trips[0]
	latestCreated, err := time.Parse(time.RFC3339, latest.CreatedDatetime)
	if err != nil {
		return latest
	}

	for i := 1; i < len(trips); i++ {
		currentCreated, err := time.Parse(time.RFC3339, trips[i].CreatedDatetime)
		if err != nil {
			continue
		}

		if currentCreated.After(latestCreated) {
			latest = &trips[i]
			latestCreated = currentCreated
		}
	}

	return latest
}

// calculateDayDates calculates the calendar date of each trip day,
// starting from the given date
func calculateDayDates(startDateStr string, daysCount int) ([]time.Time, error) {
	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid start date format: %w", err)
	}

	dates := make([]time.Time, daysCount)
	for i := 0; i < daysCount; i++ {
		dates[i] = startDate.AddDate(0, 0, i)
	}

	return dates, nil
}

// filterActiveActivities filters catalog records to only those with
// "Active" status (case-insensitive)
func filterActiveActivities(activities []db.Activity) []db.Activity {
	active := make([]db.Activity, 0)
	for _, activity := range activities {
		if strings.EqualFold(activity.Status, "Active") {
			active = append(active, activity)
		}
	}
	return active
}

// activitiesByID builds a lookup map of catalog records by their ID
func activitiesByID(activities []db.Activity) map[string]db.Activity {
	byID := make(map[string]db.Activity, len(activities))
	for _, activity := range activities {
		byID[activity.ID] = activity
	}
	return byID
}

// sortSelectionsByPosition returns a copy of the selections ordered by the
// position they were selected in
func sortSelectionsByPosition(selections []db.Selection) []db.Selection {
	sorted := make([]db.Selection, len(selections))
	copy(sorted, selections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return sorted
}

// convertToItineraryActivity converts a catalog record into builder input.
// Unknown open window labels are skipped with a warning rather than
// failing the build.
func convertToItineraryActivity(a db.Activity, logger *zap.Logger) itinerary.Activity {
	activity := itinerary.Activity{
		ID:           a.ID,
		Name:         a.Name,
		Category:     itinerary.Category(a.Category),
		DurationMins: a.DurationMins,
		PriceTier:    a.PriceTier,
		Neighborhood: a.Neighborhood,
		Lat:          a.Lat,
		Lng:          a.Lng,
		MustBook:     a.MustBook,
	}

	if a.Popularity != nil {
		popularity := *a.Popularity
		activity.Popularity = &popularity
	}

	for _, label := range a.OpenWindows {
		block, ok := itinerary.ParseTimeBlock(label)
		if !ok {
			logger.Warn("Skipping unknown open window label",
				zap.String("activity_id", a.ID),
				zap.String("label", label))
			continue
		}
		activity.OpenWindows = append(activity.OpenWindows, block)
	}

	return activity
}

// blockTitle maps a stored block label to its display form
func blockTitle(label string) string {
	switch label {
	case "morning":
		return "Morning"
	case "afternoon":
		return "Afternoon"
	case "evening":
		return "Evening"
	default:
		return label
	}
}
