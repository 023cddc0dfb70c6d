package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/database"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/migration"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/cli/bootstrap"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/config"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

var (
	opts   bootstrap.Options
	driver string
	name   string
	steps  int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply, roll back, inspect status and create new scripts.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigDir, "config", "c", "", "Directory holding config.yaml (default: ./configs)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and which scripts are applied.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new empty SQL migration script for the chosen driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&driver, "driver", config.DriverMySQL, "Script set to write into (mysql or sqlite)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func openStrategy() (*migration.GooseStrategy, logger.Interface, error) {
	cfg, _, log, err := bootstrap.OpenDatabase(opts)
	if err != nil {
		return nil, nil, err
	}
	return migration.NewGooseStrategy(cfg.Database.Driver, log), log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, log, err := openStrategy()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", opts.Env)
	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}

	strategy, log, err := openStrategy()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("rolling back migrations", "environment", opts.Env, "steps", steps)
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, _, err := openStrategy()
	if err != nil {
		return err
	}
	defer database.Close()

	scripts, err := strategy.Status(database.Get())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range scripts {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(out, "%05d  %-8s %s\n", s.Version, state, s.Source)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	if driver != config.DriverMySQL && driver != config.DriverSQLite {
		return fmt.Errorf("unsupported driver %q", driver)
	}
	return migration.NewGooseStrategy(driver, logger.NewLogger()).Create(name)
}
