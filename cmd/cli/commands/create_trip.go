package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/core/services"
)

// CreateTripCmd creates the createTrip command
func CreateTripCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createTrip <name>",
		Short: "Create a new trip",
		Long:  "Create a new trip with the given name. Defaults to the next Saturday and the configured day count unless overridden.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			startDate, _ := cmd.Flags().GetString("start-date")
			daysCount, _ := cmd.Flags().GetInt("days")

			if daysCount == 0 {
				daysCount = app.Cfg.DefaultDaysCount
			}

			app.Logger.Debug("createTrip command",
				zap.String("name", name),
				zap.String("start_date", startDate),
				zap.Int("days_count", daysCount))

			result, err := services.CreateTrip(app.Ctx, app.Database, app.Logger, name, startDate, daysCount)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Trip created successfully!\n\n")
			fmt.Printf("Trip ID:    %s\n", result.Trip.ID)
			fmt.Printf("Name:       %s\n", result.Trip.Name)
			fmt.Printf("Start Date: %s\n", result.Trip.StartDate)
			fmt.Printf("Days:       %d\n\n", result.Trip.DaysCount)

			fmt.Printf("Trip Days:\n")
			for i, dayDate := range result.DayDates {
				fmt.Printf("  %2d. %s\n", i+1, dayDate.Format("Mon Jan 02 2006"))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("start-date", "", "Trip start date (YYYY-MM-DD, defaults to next Saturday)")
	cmd.Flags().Int("days", 0, "Number of trip days (defaults to the configured day count)")

	return cmd
}
