package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/seniorconnect/seniorconnect-api/config"
	"github.com/seniorconnect/seniorconnect-api/pkg/db"
	"github.com/seniorconnect/seniorconnect-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if cfg.Storage.Driver != "postgres" {
		fmt.Fprintf(os.Stderr, "Migrations only apply to the postgres driver (STORAGE_DRIVER=%s)\n", cfg.Storage.Driver)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		ServiceName: "seniorconnect-migrate",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting database migrations",
		zap.String("database", maskDatabaseURL(cfg.Storage.DatabaseURL)))

	if err := db.RunMigrations(cfg.Storage.DatabaseURL, "file://migrations"); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Database migrations completed successfully")
}

// maskDatabaseURL masks the credentials in the database URL for logging
func maskDatabaseURL(url string) string {
	if len(url) > 20 {
		return url[:20] + "***"
	}
	return "***"
}
