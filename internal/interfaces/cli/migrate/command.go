// Package migrate implements the database migration commands.
package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"adminkit/internal/infrastructure/config"
	"adminkit/internal/infrastructure/database"
	"adminkit/internal/infrastructure/migration"
	"adminkit/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run pending migrations, roll them back, or inspect the schema version.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newVersionCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE:  runVersion,
	}
}

func initEnv() (*migration.GooseStrategy, *gorm.DB, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Init(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}

	return migration.NewGooseStrategy(scriptsPath, cfg.Database.Driver), db, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, db, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	logger.Info("running migrations", "environment", env)
	if err := strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("migrations completed successfully")

	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	strategy, db, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	logger.Info("rolling back migrations", "environment", env, "steps", steps)
	if err := strategy.MigrateDown(db, steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}
	logger.Info("rollback completed successfully")

	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, db, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	return strategy.Status(db)
}

func runVersion(cmd *cobra.Command, args []string) error {
	strategy, db, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	version, err := strategy.GetVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	fmt.Printf("current schema version: %d\n", version)
	return nil
}
