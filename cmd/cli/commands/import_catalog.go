package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowanhale/tripsmith/pkg/core/services"
)

// ImportCatalogCmd creates the importCatalog command
func ImportCatalogCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importCatalog",
		Short: "Import the activity catalog from the catalog sheet",
		Long:  "Pull the activity catalog from the configured Google Sheet and mirror it into the database. Rows that fail to parse are skipped and reported.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("importCatalog command")

			result, err := services.ImportCatalog(app.Ctx, app.Database, app.SheetsClient, app.Cfg, app.Logger)
			if err != nil {
				return fmt.Errorf("failed to import catalog: %w", err)
			}

			// Display results
			fmt.Printf("\n✓ Catalog imported successfully!\n\n")
			fmt.Printf("New activities:     %d\n", result.New)
			fmt.Printf("Updated activities: %d\n", result.Updated)
			fmt.Println()

			if len(result.SkippedRows) > 0 {
				fmt.Printf("⚠️  Skipped %d rows:\n", len(result.SkippedRows))
				for _, row := range result.SkippedRows {
					fmt.Printf("  ✗ %s\n", row)
				}
				fmt.Println()
			}

			return nil
		},
	}
}
