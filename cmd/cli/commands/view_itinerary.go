package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/core/services"
)

// ViewItineraryCmd creates the viewItinerary command
func ViewItineraryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewItinerary",
		Short: "View the saved itinerary for a trip (defaults to latest trip)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tripID, _ := cmd.Flags().GetString("trip-id")

			app.Logger.Debug("viewItinerary command", zap.String("trip_id", tripID))

			// Call the service
			result, err := services.ViewItinerary(
				app.Ctx,
				app.Database,
				app.Logger,
				tripID,
			)
			if err != nil {
				return err
			}

			// ANSI color codes
			const (
				colorReset = "\033[0m"
				colorBold  = "\033[1m"
			)

			// Display header
			fmt.Printf("\n📋 Trip Itinerary\n\n")
			fmt.Printf("Trip:       %s (%s)\n", result.Trip.Name, result.Trip.ID)
			fmt.Printf("Start Date: %s\n", result.Trip.StartDate)
			fmt.Printf("Days:       %d\n", result.Trip.DaysCount)
			if result.Trip.BuiltDatetime != "" {
				fmt.Printf("Built:      %s\n", result.Trip.BuiltDatetime)
			}
			fmt.Println()

			// Display each day with its three blocks
			for _, day := range result.Days {
				fmt.Printf("%sDay %d - %s%s\n",
					colorBold,
					day.Index+1,
					day.Date.Format("Mon Jan 02 2006"),
					colorReset)
				for _, block := range day.Blocks {
					fmt.Printf("  %s:\n", blockHeading(block.Block))
					if len(block.Items) == 0 {
						fmt.Println("    (free)")
						continue
					}
					for _, item := range block.Items {
						line := fmt.Sprintf("    • %s (%s) - %d mins", item.Name, item.Category, item.DurationMins)
						if item.MustBook {
							line += " [Must book]"
						}
						if item.BookingURL != "" {
							line += " " + item.BookingURL
						}
						fmt.Println(line)
					}
				}
				fmt.Println()
			}

			// Display overflow if any
			if len(result.Overflow) > 0 {
				fmt.Printf("⚠️  Overflow (%d):\n", len(result.Overflow))
				for _, item := range result.Overflow {
					line := fmt.Sprintf("  • %s (%s) - %d mins", item.Name, item.Category, item.DurationMins)
					if item.MustBook {
						line += " [Must book]"
					}
					fmt.Println(line)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().String("trip-id", "", "Trip to view (defaults to the latest trip)")

	return cmd
}

// blockHeading capitalizes a block name for display
func blockHeading(block string) string {
	if block == "" {
		return ""
	}
	return strings.ToUpper(block[:1]) + block[1:]
}
