package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/healthai/etl/internal/config"
	"github.com/healthai/etl/internal/data/db"
	"github.com/healthai/etl/internal/etl/load"
	"github.com/healthai/etl/internal/etl/pipeline"
	"github.com/healthai/etl/internal/logger"
	"github.com/healthai/etl/internal/repos"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ETL pipeline once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, postgresService, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()
		defer postgresService.Close()

		runPipeline(cmd.Context(), cfg, postgresService, log)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runPipeline(ctx context.Context, cfg *config.Config, postgresService *db.PostgresService, log *logger.Logger) {
	gormDB := postgresService.DB()
	store := load.NewGormStore(gormDB, log)
	userRepo := repos.NewUserRepo(gormDB, log)

	report := pipeline.New(cfg.Sources, store, userRepo, log).Run(ctx)

	for _, stage := range report.Stages {
		if stage.Err != nil {
			log.Error("Stage result", "stage", stage.Name, "error", stage.Err)
			continue
		}
		log.Info("Stage result", "stage", stage.Name, "rows", stage.Rows,
			"inserted", stage.Load.Inserted, "conflicted", stage.Load.Conflicted, "failed", stage.Load.Failed)
	}
	log.Info("Pipeline run finished", "duration", report.Finished.Sub(report.Started).String())
}
