package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/core/services"
)

// DeselectActivityCmd creates the deselectActivity command
func DeselectActivityCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deselectActivity <activityID>",
		Short: "Remove an activity from a trip's selection",
		Long:  "Remove an activity from a trip's selection. A built itinerary keeps its saved placements until the next build.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID := args[0]
			tripID, _ := cmd.Flags().GetString("trip-id")

			app.Logger.Debug("deselectActivity command",
				zap.String("trip_id", tripID),
				zap.String("activity_id", activityID))

			result, err := services.DeselectActivity(app.Ctx, app.Database, app.Logger, tripID, activityID)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Removed %s from trip %q\n", result.ActivityID, result.Trip.Name)
			fmt.Printf("Remaining selected: %d\n\n", result.Remaining)
			fmt.Println("💡 Run buildItinerary to refresh the saved schedule.")

			return nil
		},
	}

	cmd.Flags().String("trip-id", "", "Trip to deselect from (defaults to the latest trip)")

	return cmd
}
