package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the ETL pipeline on a cron schedule until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, postgresService, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()
		defer postgresService.Close()

		schedule, err := cron.ParseStandard(cfg.Schedule)
		if err != nil {
			return fmt.Errorf("parse ETL_SCHEDULE %q: %w", cfg.Schedule, err)
		}

		c := cron.New()
		c.Schedule(schedule, cron.FuncJob(func() {
			runPipeline(context.Background(), cfg, postgresService, log)
		}))
		c.Start()
		defer c.Stop()

		log.Info("ETL scheduler started", "schedule", cfg.Schedule)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		log.Info("Scheduler stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}
