package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/cmd/cli/commands"
	"github.com/rowanhale/tripsmith/internal/config"
	"github.com/rowanhale/tripsmith/pkg/clients/sheetsclient"
	"github.com/rowanhale/tripsmith/pkg/postgres"
	"github.com/rowanhale/tripsmith/pkg/utils/logging"
)

var (
	env     string
	verbose bool

	// app is shared by every command; initApp fills it in before any RunE
	// executes.
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Tripsmith CLI - Plan multi-day trip itineraries",
		Long:  `A CLI tool for managing trips, selecting activities from a shared catalog, and building day-by-day itineraries.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
			if app.Database != nil {
				app.Database.Close()
			}
		},
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Also log debug output to the console")

	// Add all commands
	rootCmd.AddCommand(commands.CreateTripCmd(app))
	rootCmd.AddCommand(commands.ImportCatalogCmd(app))
	rootCmd.AddCommand(commands.ListActivitiesCmd(app))
	rootCmd.AddCommand(commands.SelectActivitiesCmd(app))
	rootCmd.AddCommand(commands.DeselectActivityCmd(app))
	rootCmd.AddCommand(commands.BuildItineraryCmd(app))
	rootCmd.AddCommand(commands.ViewItineraryCmd(app))
	rootCmd.AddCommand(commands.PublishItineraryCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, clients, and database
func initApp() error {
	var err error
	app.Ctx = context.Background()
	app.Env = env

	// Initialize logger
	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Load OAuth client configuration
	app.Logger.Info("Loading OAuth client configuration")
	app.OauthCfg, err = config.LoadOAuthClientWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load OAuth client config: %w", err)
	}
	app.Logger.Debug("OAuth configuration loaded successfully")

	// Initialize sheets client
	app.Logger.Info("Initializing sheets client")
	app.SheetsClient, err = sheetsclient.NewClient(app.Ctx, app.OauthCfg, env)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	app.Logger.Debug("Sheets client initialized successfully")

	// Connect to Postgres and apply migrations
	app.Logger.Info("Connecting to database")
	database, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(app.Ctx); err != nil {
		database.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = database
	app.Logger.Info("Database initialized successfully")

	return nil
}
