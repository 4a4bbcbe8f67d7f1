package main

import (
	"fmt"
	"os"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Manage the trivia database schema",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *sqlx.DB, driver string) error {
			if err := database.RunMigrations(db, driver); err != nil {
				return err
			}
			return printVersion(db, driver)
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Long:  "Roll back the given number of migrations, or all of them when --steps is 0.",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, _ := cmd.Flags().GetInt("steps")
		if steps < 0 {
			return fmt.Errorf("--steps must not be negative, got %d", steps)
		}
		return withDB(func(db *sqlx.DB, driver string) error {
			if err := database.RollbackMigrations(db, driver, steps); err != nil {
				return err
			}
			return printVersion(db, driver)
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(printVersion)
	},
}

func init() {
	downCmd.Flags().Int("steps", 1, "Number of migrations to roll back (0 rolls back all)")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(versionCmd)
}

// withDB loads the configuration, connects and hands the connection to fn.
func withDB(fn func(db *sqlx.DB, driver string) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(db, cfg.DB.Driver)
}

func printVersion(db *sqlx.DB, driver string) error {
	version, dirty, err := database.MigrationVersion(db, driver)
	if err != nil {
		return err
	}
	logger.Get().Info("Schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	fmt.Printf("version %d (dirty: %t)\n", version, dirty)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
