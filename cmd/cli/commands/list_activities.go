package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListActivitiesCmd creates the listActivities command
func ListActivitiesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listActivities",
		Short: "List all activities in the imported catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Fetch the catalog
			activities, err := app.Database.GetActivities(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list activities: %w", err)
			}

			// Print activities
			fmt.Printf("\nFound %d activities:\n\n", len(activities))
			for _, a := range activities {
				bookInfo := ""
				if a.MustBook {
					bookInfo = " [Must book]"
				}
				fmt.Printf("- %s (%s) - %s - %d mins - %s%s\n",
					a.Name,
					a.ID,
					a.Category,
					a.DurationMins,
					a.Status,
					bookInfo,
				)
			}

			return nil
		},
	}
}
