package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/internal/config"
	"github.com/rowanhale/tripsmith/pkg/core/itinerary"
	"github.com/rowanhale/tripsmith/pkg/db"
)

// BuildItineraryResult contains the build results
type BuildItineraryResult struct {
	TripID           string
	TripName         string
	TripStart        string
	DaysCount        int
	DayDates         []time.Time
	Itinerary        itinerary.Itinerary
	ValidationErrors []itinerary.ValidationError
	SkippedRetired   []string
	Saved            bool
}

// BuildItineraryStore defines the database operations needed for building an itinerary
type BuildItineraryStore interface {
	GetTrips(ctx context.Context) ([]db.Trip, error)
	GetActivities(ctx context.Context) ([]db.Activity, error)
	GetSelections(ctx context.Context, tripID string) ([]db.Selection, error)
	ReplacePlacements(tripID string, placements []db.Placement) error
	SetTripBuiltDatetime(ctx context.Context, tripID string, datetime time.Time) error
}

// BuildItinerary schedules a trip's selected activities into day blocks.
// tripID may be empty to target the most recently created trip.
// If dryRun is true, the resulting placements are not saved.
// If forceCommit is true, placements are saved even if validation fails.
func BuildItinerary(
	ctx context.Context,
	database BuildItineraryStore,
	cfg *config.Config,
	logger *zap.Logger,
	tripID string,
	dryRun bool,
	forceCommit bool,
) (*BuildItineraryResult, error) {
	logger.Debug("Starting buildItinerary",
		zap.Bool("dry_run", dryRun),
		zap.Bool("force_commit", forceCommit))

	// Step 1: DB query - Fetch trips and resolve the target
	logger.Debug("Fetching trips")
	trips, err := database.GetTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %w", err)
	}
	logger.Debug("Found trips", zap.Int("count", len(trips)))

	targetTrip, err := resolveTrip(trips, tripID)
	if err != nil {
		return nil, err
	}

	logger.Debug("Target trip",
		zap.String("id", targetTrip.ID),
		zap.String("name", targetTrip.Name),
		zap.String("start", targetTrip.StartDate),
		zap.Int("days_count", targetTrip.DaysCount))

	// Calculate the calendar date of each trip day
	dayDates, err := calculateDayDates(targetTrip.StartDate, targetTrip.DaysCount)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate day dates: %w", err)
	}

	// Step 2: DB query - Fetch the trip's selections
	logger.Debug("Fetching selections")
	selections, err := database.GetSelections(ctx, targetTrip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch selections: %w", err)
	}
	logger.Debug("Found selections", zap.Int("count", len(selections)))

	if len(selections) == 0 {
		return nil, fmt.Errorf("no activities selected for trip %s - please run selectActivities first", targetTrip.ID)
	}

	// Step 3: DB query - Fetch the activity catalog
	logger.Debug("Fetching activity catalog")
	activities, err := database.GetActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	byID := activitiesByID(activities)

	// Step 4: Convert selections to builder input in selection order.
	// Activities retired since they were selected are dropped with a warning.
	ordered := sortSelectionsByPosition(selections)
	selected := make([]itinerary.Activity, 0, len(ordered))
	var skippedRetired []string
	for _, selection := range ordered {
		record, ok := byID[selection.ActivityID]
		if !ok {
			return nil, fmt.Errorf("selection references unknown activity %s - reimport the catalog", selection.ActivityID)
		}
		if !strings.EqualFold(record.Status, "Active") {
			logger.Warn("Skipping retired activity",
				zap.String("activity_id", record.ID),
				zap.String("name", record.Name))
			skippedRetired = append(skippedRetired, record.ID)
			continue
		}
		selected = append(selected, convertToItineraryActivity(record, logger))
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("all selected activities for trip %s have been retired", targetTrip.ID)
	}

	// Step 5: Convert config capacity overrides to day overrides
	logger.Debug("Converting capacity overrides", zap.Int("count", len(cfg.CapacityOverrides)))
	dayOverrides, err := convertCapacityOverrides(cfg.CapacityOverrides, dayDates, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to convert capacity overrides: %w", err)
	}
	logger.Debug("Converted overrides", zap.Int("count", len(dayOverrides)))

	// Step 6: Run the builder
	plan := itinerary.Plan{
		Activities:   selected,
		DaysCount:    targetTrip.DaysCount,
		DayOverrides: dayOverrides,
	}

	logger.Info("Building itinerary",
		zap.Int("activities", len(selected)),
		zap.Int("days", targetTrip.DaysCount))
	result := itinerary.BuildPlan(plan)

	logger.Info("Build completed",
		zap.Int("scheduled", countScheduled(result)),
		zap.Int("overflow", len(result.Overflow)))

	// Step 7: Validate the built itinerary
	validationErrors := itinerary.Validate(plan, result)
	for _, verr := range validationErrors {
		logger.Warn("Validation error",
			zap.String("rule", verr.Rule),
			zap.Int("day_index", verr.DayIndex),
			zap.String("block", verr.Block),
			zap.String("description", verr.Description))
	}

	// Determine if we should save placements to the database
	shouldSave := !dryRun && (len(validationErrors) == 0 || forceCommit)

	if shouldSave {
		logger.Info("Saving placements to database",
			zap.Bool("forced", forceCommit && len(validationErrors) > 0))
		placements := convertToDBPlacements(targetTrip.ID, result)
		if err := database.ReplacePlacements(targetTrip.ID, placements); err != nil {
			return nil, fmt.Errorf("failed to save placements: %w", err)
		}
		if err := database.SetTripBuiltDatetime(ctx, targetTrip.ID, time.Now()); err != nil {
			return nil, fmt.Errorf("failed to set trip built datetime: %w", err)
		}
		logger.Info("Placements saved", zap.Int("count", len(placements)))
	} else if dryRun {
		logger.Info("Dry run mode - placements not saved")
	} else {
		logger.Warn("Validation failed - not saving placements (use forceCommit to save anyway)")
	}

	return &BuildItineraryResult{
		TripID:           targetTrip.ID,
		TripName:         targetTrip.Name,
		TripStart:        targetTrip.StartDate,
		DaysCount:        targetTrip.DaysCount,
		DayDates:         dayDates,
		Itinerary:        result,
		ValidationErrors: validationErrors,
		SkippedRetired:   skippedRetired,
		Saved:            shouldSave,
	}, nil
}

// countScheduled counts the activities placed into day blocks
func countScheduled(result itinerary.Itinerary) int {
	count := 0
	for _, day := range result.Days {
		for _, block := range itinerary.AllBlocks() {
			count += len(day.Blocks[block])
		}
	}
	return count
}

// convertCapacityOverrides converts config.CapacityOverride entries into
// per-day overrides for the builder. Each rrule is expanded over the trip's
// date range; overrides are layered in order, so a later override of the
// same block on the same day wins.
func convertCapacityOverrides(
	configOverrides []config.CapacityOverride,
	dayDates []time.Time,
	logger *zap.Logger,
) ([]itinerary.DayOverride, error) {
	if len(configOverrides) == 0 || len(dayDates) == 0 {
		return nil, nil
	}

	tripStart := dayDates[0]
	tripEnd := dayDates[len(dayDates)-1]

	capacities := make(map[int]itinerary.BlockCapacities)

	for i, override := range configOverrides {
		rule, err := rrule.StrToRRule(override.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for override %d: %w", i, err)
		}

		// Expand the rule over the trip range, with a small buffer for
		// edge cases
		searchStart := tripStart.AddDate(0, 0, -7)
		searchEnd := tripEnd.AddDate(0, 0, 7)
		rule.DTStart(searchStart)

		occurrenceSet := make(map[string]bool)
		for _, occurrence := range rule.Between(searchStart, searchEnd, true) {
			occurrenceSet[occurrence.Format("2006-01-02")] = true
		}

		matched := 0
		for dayIndex, date := range dayDates {
			if !occurrenceSet[date.Format("2006-01-02")] {
				continue
			}

			caps, ok := capacities[dayIndex]
			if !ok {
				caps = itinerary.DefaultCapacities()
			}
			if override.MorningMins != nil {
				caps[itinerary.BlockMorning] = *override.MorningMins
			}
			if override.AfternoonMins != nil {
				caps[itinerary.BlockAfternoon] = *override.AfternoonMins
			}
			if override.EveningMins != nil {
				caps[itinerary.BlockEvening] = *override.EveningMins
			}
			capacities[dayIndex] = caps
			matched++
		}

		logger.Debug("Converted capacity override",
			zap.Int("index", i),
			zap.String("rrule", override.RRule),
			zap.Int("matched_days", matched))
	}

	if len(capacities) == 0 {
		return nil, nil
	}

	dayIndexes := make([]int, 0, len(capacities))
	for dayIndex := range capacities {
		dayIndexes = append(dayIndexes, dayIndex)
	}
	sort.Ints(dayIndexes)

	result := make([]itinerary.DayOverride, 0, len(capacities))
	for _, dayIndex := range dayIndexes {
		result = append(result, itinerary.DayOverride{
			DayIndex:   dayIndex,
			Capacities: capacities[dayIndex],
		})
	}

	return result, nil
}

// convertToDBPlacements converts a built itinerary to database placement
// records. Overflow entries use day index -1 and the "overflow" block tag.
func convertToDBPlacements(tripID string, result itinerary.Itinerary) []db.Placement {
	placements := make([]db.Placement, 0)

	for _, day := range result.Days {
		for _, block := range itinerary.AllBlocks() {
			for slot, item := range day.Blocks[block] {
				placements = append(placements, db.Placement{
					ID:         uuid.New().String(),
					TripID:     tripID,
					ActivityID: item.Activity.ID,
					DayIndex:   day.Index,
					Block:      block.String(),
					Slot:       slot,
				})
			}
		}
	}

	for slot, activity := range result.Overflow {
		placements = append(placements, db.Placement{
			ID:         uuid.New().String(),
			TripID:     tripID,
			ActivityID: activity.ID,
			DayIndex:   -1,
			Block:      "overflow",
			Slot:       slot,
		})
	}

	return placements
}
