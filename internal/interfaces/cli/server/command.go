// Package server implements the HTTP server command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	sessionusecases "adminkit/internal/application/session/usecases"
	"adminkit/internal/infrastructure/config"
	"adminkit/internal/infrastructure/database"
	"adminkit/internal/infrastructure/migration"
	"adminkit/internal/infrastructure/repository"
	"adminkit/internal/infrastructure/scheduler"
	httpRouter "adminkit/internal/interfaces/http"
	"adminkit/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the adminkit HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run gorm auto-migration on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	logger.Info("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	db, err := database.Init(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	if err := handleMigrations(cfg, db); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}

	router := httpRouter.NewRouter(db, redisClient, cfg, log)
	router.SetupRoutes()

	sched, err := startSessionScheduler(cfg, db, log)
	if err != nil {
		return fmt.Errorf("failed to start session scheduler: %w", err)
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			logger.Error("failed to stop scheduler", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// startSessionScheduler registers the sweep and purge jobs and starts the
// scheduler. The sweep also fires once immediately so a restart cannot leave
// expired records marked active.
func startSessionScheduler(cfg *config.Config, db *gorm.DB, log logger.Interface) (*scheduler.SchedulerManager, error) {
	sessionRepo := repository.NewSessionRepository(db)

	sweepJob := sessionusecases.NewSweepExpiredSessionsJob(sessionRepo, log)
	purgeJob := sessionusecases.NewPurgeInactiveSessionsJob(sessionRepo, cfg.Auth.Session.PurgeAfterDays, log)

	sched, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return nil, err
	}

	sweepInterval := time.Duration(cfg.Auth.Session.SweepIntervalMinutes) * time.Minute
	purgeInterval := time.Duration(cfg.Auth.Session.PurgeIntervalHours) * time.Hour
	if err := sched.RegisterSessionJobs(sweepJob, purgeJob, sweepInterval, purgeInterval); err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}

func handleMigrations(cfg *config.Config, db *gorm.DB) error {
	if autoMigrate {
		if cfg.Server.Mode == "release" {
			logger.Warn("auto-migration is enabled in release mode - this is not recommended")
		}

		logger.Info("running auto-migration")
		strategy := migration.NewGormAutoMigrateStrategy()
		if err := strategy.Migrate(db); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Info("auto-migration completed successfully")
		return nil
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		logger.Warn("failed to resolve migration scripts path", "error", err)
		return nil
	}

	strategy := migration.NewGooseStrategy(scriptsPath, cfg.Database.Driver)
	version, err := strategy.GetVersion(db)
	if err != nil {
		logger.Warn("failed to check migration status", "error", err)
		return nil
	}
	logger.Info("current migration version", "version", version)

	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
