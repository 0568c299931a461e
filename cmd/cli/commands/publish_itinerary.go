package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/core/services"
)

// PublishItineraryCmd creates the publishItinerary command
func PublishItineraryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishItinerary",
		Short: "Publish a built itinerary to Google Sheets",
		Long:  "Publish a trip's saved itinerary to the shared Google Sheet. If no trip is given, publishes the latest trip.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tripID, _ := cmd.Flags().GetString("trip-id")

			app.Logger.Debug("publishItinerary command", zap.String("trip_id", tripID))

			// Publish the itinerary to Google Sheets
			result, err := services.PublishItinerary(
				app.Ctx,
				app.Database,
				app.SheetsClient,
				app.Cfg,
				app.Logger,
				tripID,
			)
			if err != nil {
				return fmt.Errorf("failed to publish itinerary: %w", err)
			}

			// Display success message
			fmt.Printf("\n✅ Itinerary Published Successfully\n\n")
			fmt.Printf("Trip:       %s\n", result.Published.TripName)
			fmt.Printf("Start Date: %s\n", result.Published.StartDate)
			fmt.Printf("Days:       %d\n", result.Published.DaysCount)
			fmt.Printf("Sheet ID:   %s\n", result.SheetID)
			fmt.Println()

			// Display summary table
			fmt.Printf("📅 Published Rows:\n\n")

			// Print header
			fmt.Printf("%-24s  %-11s  %-30s  %-10s  %-10s\n", "Day", "Block", "Activity", "Category", "Duration")
			fmt.Println("------------------------  -----------  ------------------------------  ----------  ----------")

			// Print each row
			for _, row := range result.Published.Rows {
				block := row.Block
				if block == "" {
					block = "—"
				}
				fmt.Printf("%-24s  %-11s  %-30s  %-10s  %-10s\n", row.Day, block, row.Activity, row.Category, row.Duration)
			}

			fmt.Println()
			fmt.Println("✅ Itinerary has been published to Google Sheets.")

			return nil
		},
	}

	cmd.Flags().String("trip-id", "", "Trip to publish (defaults to the latest trip)")

	return cmd
}
