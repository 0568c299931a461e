package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/db"
)

// DeselectActivityResult represents the result of removing a selection
type DeselectActivityResult struct {
	Trip       *db.Trip
	ActivityID string
	Remaining  int
}

// DeselectActivityStore defines the database operations needed for removing a selection
type DeselectActivityStore interface {
	GetTrips(ctx context.Context) ([]db.Trip, error)
	GetSelections(ctx context.Context, tripID string) ([]db.Selection, error)
	DeleteSelection(ctx context.Context, tripID, activityID string) error
}

// DeselectActivity removes an activity from a trip's selection.
// tripID may be empty to target the most recently created trip.
// An already built itinerary keeps its placements until the next build.
func DeselectActivity(
	ctx context.Context,
	database DeselectActivityStore,
	logger *zap.Logger,
	tripID string,
	activityID string,
) (*DeselectActivityResult, error) {
	if activityID == "" {
		return nil, fmt.Errorf("no activity ID given")
	}

	logger.Debug("Starting deselectActivity", zap.String("activity_id", activityID))

	logger.Debug("Fetching trips")
	trips, err := database.GetTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %w", err)
	}

	trip, err := resolveTrip(trips, tripID)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved trip", zap.String("id", trip.ID), zap.String("name", trip.Name))

	if err := database.DeleteSelection(ctx, trip.ID, activityID); err != nil {
		return nil, err
	}

	remaining, err := database.GetSelections(ctx, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch selections: %w", err)
	}

	logger.Info("Selection removed",
		zap.String("trip_id", trip.ID),
		zap.String("activity_id", activityID),
		zap.Int("remaining", len(remaining)))

	return &DeselectActivityResult{
		Trip:       trip,
		ActivityID: activityID,
		Remaining:  len(remaining),
	}, nil
}
