// Package main implements the entry point for the taskboard API server,
// a single-user task tracker with JWT-authenticated CRUD over Postgres.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
)

func main() {
	// Migration mode: when -migrate is set the process runs the requested
	// migration command and exits instead of serving.
	migrateCmd := flag.String(
		"migrate",
		"",
		"Run database migrations (up, down, status) and exit",
	)
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// run loads configuration, sets up logging and the database, and either
// executes migrations or starts the HTTP server.
func run(migrateCmd string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	// Migration mode: run the command and exit
	if migrateCmd != "" {
		if err := runMigrations(cfg, appLogger, migrateCmd); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		appLogger.Info("Migrations completed", slog.String("command", migrateCmd))
		return nil
	}

	// Establish database connection
	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	// Wire application dependencies
	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		// The application owns the connection from here on; close it
		// ourselves only when wiring failed.
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// Run until shutdown
	return app.Run(context.Background())
}
