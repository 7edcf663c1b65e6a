package cmd

import (
	"fmt"

	"gpa-tracker/internal/config"
	"gpa-tracker/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration management",
	Long:  "Manage the PostgreSQL schema used by the postgres and sql storage backends",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Run pending migrations",
	Long:  "Execute all pending database migrations",
	RunE:  runMigrateUp,
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long:  "Display the status of all migrations",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func newMigrationRunner() (*database.MigrationRunner, error) {
	db, err := database.NewConnection(databaseConfig(config.Get()))
	if err != nil {
		return nil, err
	}
	return database.NewEmbeddedMigrationRunner(db)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	runner, err := newMigrationRunner()
	if err != nil {
		return err
	}

	applied, err := runner.RunMigrations()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrations completed successfully! %d applied\n", applied)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	runner, err := newMigrationRunner()
	if err != nil {
		return err
	}

	migrations, err := runner.GetMigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Migration Status:")
	fmt.Fprintln(w, "================")
	for _, migration := range migrations {
		status := "Pending"
		if migration.AppliedAt != nil {
			status = fmt.Sprintf("Applied at %s", migration.AppliedAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Fprintf(w, "%s - %s [%s]\n", migration.ID, migration.Description, status)
	}
	return nil
}
