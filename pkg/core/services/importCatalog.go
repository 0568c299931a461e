package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/internal/config"
	"github.com/rowanhale/tripsmith/pkg/core/model"
	"github.com/rowanhale/tripsmith/pkg/db"
)

// ImportCatalogResult represents the result of importing the activity catalog
type ImportCatalogResult struct {
	New         int
	Updated     int
	SkippedRows []string
}

// CatalogClient defines the operations needed to fetch the activity catalog
type CatalogClient interface {
	ListActivities(cfg *config.Config) ([]model.Activity, []string, error)
}

// ImportCatalogStore defines the database operations needed for a catalog import
type ImportCatalogStore interface {
	GetActivities(ctx context.Context) ([]db.Activity, error)
	UpsertActivities(activities []db.Activity) error
}

// ImportCatalog pulls the activity catalog from the configured sheet and
// mirrors it into the database. Rows that fail to parse are skipped and
// reported; they never abort the import.
func ImportCatalog(
	ctx context.Context,
	database ImportCatalogStore,
	catalogClient CatalogClient,
	cfg *config.Config,
	logger *zap.Logger,
) (*ImportCatalogResult, error) {
	logger.Debug("Starting importCatalog")

	logger.Debug("Fetching activity catalog from sheet")
	activities, rowErrors, err := catalogClient.ListActivities(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity catalog: %w", err)
	}
	logger.Debug("Parsed catalog rows",
		zap.Int("count", len(activities)),
		zap.Int("skipped", len(rowErrors)))

	for _, rowErr := range rowErrors {
		logger.Warn("Skipped catalog row", zap.String("reason", rowErr))
	}

	if len(activities) == 0 {
		return nil, fmt.Errorf("no activities found in tab %s - check the catalog sheet", cfg.ActivitiesTab)
	}

	// Duplicate IDs in the sheet would silently overwrite each other on
	// upsert, so reject them outright
	seen := make(map[string]bool, len(activities))
	for _, activity := range activities {
		if seen[activity.ActivityID] {
			return nil, fmt.Errorf("duplicate activity ID %s in catalog", activity.ActivityID)
		}
		seen[activity.ActivityID] = true
	}

	logger.Debug("Fetching existing activities")
	existing, err := database.GetActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing activities: %w", err)
	}
	existingByID := activitiesByID(existing)

	newCount := 0
	updatedCount := 0
	for _, activity := range activities {
		if _, ok := existingByID[activity.ActivityID]; ok {
			updatedCount++
		} else {
			newCount++
		}
	}

	dbActivities := convertToDBActivities(activities)

	logger.Info("Saving activity catalog",
		zap.Int("new", newCount),
		zap.Int("updated", updatedCount))
	if err := database.UpsertActivities(dbActivities); err != nil {
		return nil, fmt.Errorf("failed to save activities: %w", err)
	}

	return &ImportCatalogResult{
		New:         newCount,
		Updated:     updatedCount,
		SkippedRows: rowErrors,
	}, nil
}

// convertToDBActivities converts parsed catalog entries to database records
func convertToDBActivities(activities []model.Activity) []db.Activity {
	result := make([]db.Activity, len(activities))
	for i, activity := range activities {
		record := db.Activity{
			ID:           activity.ActivityID,
			Name:         activity.Name,
			Category:     activity.Category,
			DurationMins: activity.DurationMins,
			PriceTier:    activity.PriceTier,
			Neighborhood: activity.Neighborhood,
			Lat:          activity.Lat,
			Lng:          activity.Lng,
			OpenWindows:  activity.OpenWindows,
			MustBook:     activity.MustBook,
			Status:       string(activity.Status),
			BookingURL:   activity.BookingURL,
		}

		if activity.Popularity != nil {
			popularity := *activity.Popularity
			record.Popularity = &popularity
		}

		result[i] = record
	}
	return result
}
