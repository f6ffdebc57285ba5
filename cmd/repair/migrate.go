package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/canyfix/repairdesk/internal/pkg/config"
	"github.com/canyfix/repairdesk/internal/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE:  runMigration(database.MigrateUp, "migrate up: ok"),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE:  runMigration(database.MigrateDown, "migrate down: ok"),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the state of every migration",
	RunE:  runMigration(database.MigrationStatus, ""),
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

func runMigration(migrate func(*sql.DB) error, done string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		configs := config.InitConfig(configPath)

		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer postgresClient.Close()

		if err := migrate(postgresClient.GetDB().DB); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		if done != "" {
			log.Println(done)
		}
		return nil
	}
}
