package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/healthai/etl/internal/config"
	"github.com/healthai/etl/internal/data/db"
	"github.com/healthai/etl/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "etl",
	Short: "Loads the HealthAI canonical tables from public nutrition and exercise datasets",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup builds the per-run dependencies shared by every subcommand: logger,
// configuration and the one long-lived Postgres handle.
func setup() (*config.Config, *db.PostgresService, *logger.Logger, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	cfg, err := config.Load(log)
	if err != nil {
		return nil, nil, nil, err
	}

	postgresService, err := db.NewPostgresService(cfg.DatabaseDSN, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, postgresService, log, nil
}
