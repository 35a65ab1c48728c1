package main

import (
	"embed"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"identity-service/app/config"
	"identity-service/app/utils/database"
	"identity-service/app/utils/logger"
	"identity-service/app/utils/migration"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	var (
		command = flag.String("command", "up", "migration command (up, down, status)")
		steps   = flag.Int("steps", 1, "number of steps for down migration")
		verbose = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}

	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}

	dbConn, err := database.NewConnection(&database.Config{
		Host:        cfg.DatabaseHost,
		Port:        parsePort(cfg.DatabasePort),
		User:        cfg.DatabaseUser,
		Password:    cfg.DatabasePassword,
		Database:    cfg.DatabaseName,
		SSLMode:     cfg.DatabaseSSLMode,
		ConnTimeout: 10 * time.Second,
	}, appLogger)
	if err != nil {
		appLogger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	migrator := migration.NewMigrator(dbConn.DB(), appLogger, migrationsFS)

	if err := dispatch(migrator, *command, *steps, appLogger); err != nil {
		appLogger.Error("migration command failed", "command", *command, "error", err)
		os.Exit(1)
	}
}

func dispatch(migrator *migration.Migrator, command string, steps int, appLogger *slog.Logger) error {
	switch command {
	case "up":
		if err := migrator.Up(); err != nil {
			return err
		}
		appLogger.Info("all migrations applied")
		return nil

	case "down":
		if steps < 1 {
			steps = 1
		}
		for i := 0; i < steps; i++ {
			if err := migrator.Down(); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		appLogger.Info("migrations rolled back", "steps", steps)
		return nil

	case "status":
		return migrator.Status()

	default:
		return fmt.Errorf("unknown command %q (available: up, down, status)", command)
	}
}

func parsePort(portStr string) int {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 5432
	}
	return port
}
