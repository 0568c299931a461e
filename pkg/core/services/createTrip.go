package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/db"
)

// CreateTripResult represents the result of creating a new trip
type CreateTripResult struct {
	Trip     *db.Trip
	DayDates []time.Time
}

// CreateTrip creates a new trip record with the given name, start date and
// day count. When startDate is empty the trip starts on the next Saturday,
// which is when most city breaks begin.
func CreateTrip(ctx context.Context, database db.TripStore, logger *zap.Logger, name, startDate string, daysCount int) (*CreateTripResult, error) {
	if name == "" {
		return nil, fmt.Errorf("trip name must not be empty")
	}
	if daysCount <= 0 {
		return nil, fmt.Errorf("days count must be positive, got %d", daysCount)
	}

	logger.Info("Creating new trip",
		zap.String("name", name),
		zap.Int("days_count", daysCount))

	var start time.Time
	if startDate == "" {
		start = nextSaturday(time.Now())
		logger.Info("No start date given, starting on the next Saturday", zap.Time("start_date", start))
	} else {
		parsed, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q (expected YYYY-MM-DD): %w", startDate, err)
		}
		start = parsed
	}

	trip := &db.Trip{
		ID:              uuid.New().String(),
		Name:            name,
		StartDate:       start.Format("2006-01-02"),
		DaysCount:       daysCount,
		CreatedDatetime: time.Now().UTC().Format(time.RFC3339),
	}

	logger.Info("Creating trip record",
		zap.String("id", trip.ID),
		zap.String("start", trip.StartDate))

	if err := database.InsertTrip(trip); err != nil {
		return nil, fmt.Errorf("failed to insert trip: %w", err)
	}

	dayDates, err := calculateDayDates(trip.StartDate, daysCount)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate day dates: %w", err)
	}

	logger.Info("Trip created successfully",
		zap.String("trip_id", trip.ID),
		zap.Int("days_count", daysCount),
		zap.String("first_day", dayDates[0].Format("2006-01-02")),
		zap.String("last_day", dayDates[len(dayDates)-1].Format("2006-01-02")))

	return &CreateTripResult{
		Trip:     trip,
		DayDates: dayDates,
	}, nil
}

// nextSaturday returns the next Saturday strictly after the given date
func nextSaturday(from time.Time) time.Time {
	// Normalize to start of day to avoid time-of-day issues
	normalized := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)

	daysUntilSaturday := (int(time.Saturday) - int(normalized.Weekday()) + 7) % 7
	if daysUntilSaturday == 0 {
		// If today is Saturday, use next Saturday
		daysUntilSaturday = 7
	}

	return normalized.AddDate(0, 0, daysUntilSaturday)
}
