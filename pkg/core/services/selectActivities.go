package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/db"
)

// SelectActivitiesResult represents the result of selecting activities for a trip
type SelectActivitiesResult struct {
	Trip            *db.Trip
	Added           []db.Selection
	AlreadySelected []string
	TotalSelected   int
}

// SelectActivitiesStore defines the database operations needed for selecting activities
type SelectActivitiesStore interface {
	GetTrips(ctx context.Context) ([]db.Trip, error)
	GetActivities(ctx context.Context) ([]db.Activity, error)
	GetSelections(ctx context.Context, tripID string) ([]db.Selection, error)
	InsertSelections(selections []db.Selection) error
}

// SelectActivities marks catalog activities as chosen for a trip.
// tripID may be empty to target the most recently created trip.
// IDs that are already selected are skipped and reported, not treated
// as errors, so reselecting a list is harmless.
func SelectActivities(
	ctx context.Context,
	database SelectActivitiesStore,
	logger *zap.Logger,
	tripID string,
	activityIDs []string,
) (*SelectActivitiesResult, error) {
	if len(activityIDs) == 0 {
		return nil, fmt.Errorf("no activity IDs given")
	}

	logger.Debug("Starting selectActivities", zap.Strings("activity_ids", activityIDs))

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

	logger.Debug("Fetching activity catalog")
	activities, err := database.GetActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	if len(activities) == 0 {
		return nil, fmt.Errorf("no activities in catalog - please run importCatalog first")
	}
	byID := activitiesByID(activities)

	var unknown, retired []string
	for _, activityID := range activityIDs {
		activity, ok := byID[activityID]
		if !ok {
			unknown = append(unknown, activityID)
			continue
		}
		if !strings.EqualFold(activity.Status, "Active") {
			retired = append(retired, activityID)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown activity IDs: %s", strings.Join(unknown, ", "))
	}
	if len(retired) > 0 {
		return nil, fmt.Errorf("cannot select retired activities: %s", strings.Join(retired, ", "))
	}

	logger.Debug("Fetching existing selections")
	existing, err := database.GetSelections(ctx, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch selections: %w", err)
	}

	selectedSet := make(map[string]bool, len(existing))
	nextPosition := 0
	for _, selection := range existing {
		selectedSet[selection.ActivityID] = true
		if selection.Position >= nextPosition {
			nextPosition = selection.Position + 1
		}
	}

	var added []db.Selection
	var alreadySelected []string
	for _, activityID := range activityIDs {
		if selectedSet[activityID] {
			alreadySelected = append(alreadySelected, activityID)
			continue
		}
		selectedSet[activityID] = true

		added = append(added, db.Selection{
			ID:         uuid.New().String(),
			TripID:     trip.ID,
			ActivityID: activityID,
			Position:   nextPosition,
		})
		nextPosition++
	}

	if len(added) > 0 {
		logger.Info("Saving selections",
			zap.String("trip_id", trip.ID),
			zap.Int("count", len(added)))
		if err := database.InsertSelections(added); err != nil {
			return nil, fmt.Errorf("failed to save selections: %w", err)
		}
	} else {
		logger.Info("All requested activities were already selected")
	}

	return &SelectActivitiesResult{
		Trip:            trip,
		Added:           added,
		AlreadySelected: alreadySelected,
		TotalSelected:   len(existing) + len(added),
	}, nil
}
