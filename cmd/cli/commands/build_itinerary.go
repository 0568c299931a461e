package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/core/itinerary"
	"github.com/rowanhale/tripsmith/pkg/core/services"
)

// BuildItineraryCmd creates the buildItinerary command
func BuildItineraryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buildItinerary",
		Short: "Build an itinerary from the selected activities",
		Long:  "Run the scheduling algorithm to place a trip's selected activities into day blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			forceCommit, _ := cmd.Flags().GetBool("force-commit")
			tripID, _ := cmd.Flags().GetString("trip-id")

			app.Logger.Debug("buildItinerary command",
				zap.String("trip_id", tripID),
				zap.Bool("dry_run", dryRun),
				zap.Bool("force_commit", forceCommit))

			// Call the service
			result, err := services.BuildItinerary(
				app.Ctx,
				app.Database,
				app.Cfg,
				app.Logger,
				tripID,
				dryRun,
				forceCommit,
			)
			if err != nil {
				return fmt.Errorf("build failed: %w", err)
			}

			// Display header
			fmt.Printf("\n🎯 Itinerary Build Results\n\n")
			fmt.Printf("Trip:       %s (%s)\n", result.TripName, result.TripID)
			fmt.Printf("Start Date: %s\n", result.TripStart)
			fmt.Printf("Days:       %d\n", result.DaysCount)
			if dryRun {
				fmt.Printf("Mode:       🧪 DRY RUN (not saved)\n")
			} else if result.Saved && len(result.ValidationErrors) == 0 {
				fmt.Printf("Status:     ✅ SUCCESS (saved to database)\n")
			} else if result.Saved {
				fmt.Printf("Status:     ⚠️  FORCED (saved despite validation errors)\n")
			} else {
				fmt.Printf("Status:     ❌ FAILED (not saved)\n")
			}
			fmt.Println()

			// Display skipped retired selections if any
			if len(result.SkippedRetired) > 0 {
				fmt.Printf("ℹ️  Skipped retired activities (%d): %s\n\n",
					len(result.SkippedRetired),
					strings.Join(result.SkippedRetired, ", "))
			}

			// Display validation errors if any
			if len(result.ValidationErrors) > 0 {
				fmt.Printf("⚠️  Validation Errors (%d):\n", len(result.ValidationErrors))
				for _, verr := range result.ValidationErrors {
					where := "plan"
					if verr.DayIndex >= 0 {
						where = fmt.Sprintf("Day %d", verr.DayIndex+1)
						if verr.Block != "" {
							where += " " + verr.Block
						}
					}
					fmt.Printf("  • %s - %s: %s\n", where, verr.Rule, verr.Description)
				}
				fmt.Println()
			}

			// Display scheduled days in a table
			fmt.Printf("📅 Scheduled Days:\n\n")

			// ANSI color codes
			const (
				colorReset  = "\033[0m"
				colorGreen  = "\033[32m"
				colorYellow = "\033[33m"
				colorBold   = "\033[1m"
			)

			// blockCell joins a block's activity names, wrapping must-book
			// entries in yellow brackets. The returned width excludes color
			// codes.
			blockCell := func(items []itinerary.ScheduledItem) (string, int) {
				if len(items) == 0 {
					return "—", 1
				}
				parts := make([]string, 0, len(items))
				width := 0
				for i, item := range items {
					if i > 0 {
						width += 2
					}
					if item.Activity.MustBook {
						parts = append(parts, fmt.Sprintf("%s[%s]%s", colorYellow, item.Activity.Name, colorReset))
						width += len(item.Activity.Name) + 2
					} else {
						parts = append(parts, item.Activity.Name)
						width += len(item.Activity.Name)
					}
				}
				return strings.Join(parts, ", "), width
			}

			// Calculate column widths
			maxAnchorLen := 8
			maxBlockLen := [3]int{12, 12, 12}
			for _, day := range result.Itinerary.Days {
				if len(day.Anchor) > maxAnchorLen {
					maxAnchorLen = len(day.Anchor)
				}
				for b := range day.Blocks {
					_, width := blockCell(day.Blocks[b])
					if width > maxBlockLen[b] {
						maxBlockLen[b] = width
					}
				}
			}

			dayColWidth := 4
			dateColWidth := 12
			anchorColWidth := maxAnchorLen + 2
			blockColWidths := [3]int{maxBlockLen[0] + 2, maxBlockLen[1] + 2, maxBlockLen[2] + 2}

			// Print header
			fmt.Printf("%s%-*s  %-*s  %-*s  %-*s  %-*s  %-*s  %s%s\n",
				colorBold,
				dayColWidth, "Day",
				dateColWidth, "Date",
				anchorColWidth, "Anchor",
				blockColWidths[0], "Morning",
				blockColWidths[1], "Afternoon",
				blockColWidths[2], "Evening",
				"Used",
				colorReset)

			// Print separator
			fmt.Print(strings.Repeat("-", dayColWidth))
			fmt.Print("  ")
			fmt.Print(strings.Repeat("-", dateColWidth))
			fmt.Print("  ")
			fmt.Print(strings.Repeat("-", anchorColWidth))
			fmt.Print("  ")
			for b := range blockColWidths {
				fmt.Print(strings.Repeat("-", blockColWidths[b]))
				fmt.Print("  ")
			}
			fmt.Println("--------")

			// Print each day
			for _, day := range result.Itinerary.Days {
				dateStr := ""
				if day.Index < len(result.DayDates) {
					dateStr = result.DayDates[day.Index].Format("Mon Jan 02")
				}
				fmt.Printf("%-*d  ", dayColWidth, day.Index+1)
				fmt.Printf("%-*s  ", dateColWidth, dateStr)

				// Format anchor
				anchorStr := "—"
				anchorDisplayWidth := 1
				if day.Anchor != "" {
					anchorStr = fmt.Sprintf("%s%s%s", colorGreen, day.Anchor, colorReset)
					anchorDisplayWidth = len(day.Anchor)
				}
				fmt.Printf("%s%s  ", anchorStr, strings.Repeat(" ", anchorColWidth-anchorDisplayWidth))

				// Format the three blocks
				usedTotal := 0
				capacityTotal := 0
				for b := range day.Blocks {
					cell, width := blockCell(day.Blocks[b])
					fmt.Printf("%s%s  ", cell, strings.Repeat(" ", blockColWidths[b]-width))
					for _, item := range day.Blocks[b] {
						usedTotal += item.Activity.DurationMins
					}
					capacityTotal += day.Remaining[b]
				}
				capacityTotal += usedTotal

				// Format used minutes
				usedStr := fmt.Sprintf("%d/%d", usedTotal, capacityTotal)
				if usedTotal == capacityTotal {
					usedStr = fmt.Sprintf("%s%s%s", colorGreen, usedStr, colorReset)
				}
				fmt.Printf("%s\n", usedStr)
			}
			fmt.Println()

			// Display overflow if any
			if len(result.Itinerary.Overflow) > 0 {
				fmt.Printf("⚠️  Overflow (%d):\n", len(result.Itinerary.Overflow))
				fmt.Println("  (Activities that did not fit into any day, in the order they failed)")
				for _, activity := range result.Itinerary.Overflow {
					fmt.Printf("  • %s (%s) - %d mins\n", activity.Name, activity.Category, activity.DurationMins)
				}
				fmt.Println()
			}

			// Summary message
			if dryRun {
				fmt.Println("💡 This was a dry run. Use without --dry-run to save placements.")
			} else if result.Saved && len(result.ValidationErrors) == 0 {
				fmt.Println("✅ Placements have been saved to the database.")
			} else if result.Saved {
				fmt.Println("⚠️  Placements were saved despite validation errors (--force-commit).")
			} else {
				fmt.Println("❌ Placements were not saved due to validation errors.")
				fmt.Println("💡 Use --force-commit to save anyway, or fix the issues and try again.")
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving to database")
	cmd.Flags().Bool("force-commit", false, "Save placements even if validation fails")
	cmd.Flags().String("trip-id", "", "Trip to build (defaults to the latest trip)")

	return cmd
}
