package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/core/services"
)

// SelectActivitiesCmd creates the selectActivities command
func SelectActivitiesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selectActivities <activityID>...",
		Short: "Select catalog activities for a trip",
		Long:  "Mark one or more catalog activities as chosen for a trip. Targets the most recently created trip unless --trip-id is given.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tripID, _ := cmd.Flags().GetString("trip-id")

			app.Logger.Debug("selectActivities command",
				zap.String("trip_id", tripID),
				zap.Strings("activity_ids", args))

			result, err := services.SelectActivities(app.Ctx, app.Database, app.Logger, tripID, args)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Selection updated for trip %q\n\n", result.Trip.Name)

			if len(result.Added) > 0 {
				fmt.Printf("Added %d activities:\n", len(result.Added))
				for _, selection := range result.Added {
					fmt.Printf("  ✓ %s (position %d)\n", selection.ActivityID, selection.Position)
				}
				fmt.Println()
			}

			if len(result.AlreadySelected) > 0 {
				fmt.Printf("Already selected: %s\n\n", strings.Join(result.AlreadySelected, ", "))
			}

			fmt.Printf("Total selected: %d\n\n", result.TotalSelected)
			return nil
		},
	}

	cmd.Flags().String("trip-id", "", "Trip to select for (defaults to the latest trip)")

	return cmd
}
