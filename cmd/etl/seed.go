package main

import (
	"github.com/spf13/cobra"

	"github.com/healthai/etl/internal/etl/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate synthetic journal, session and progression data for loaded users",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, postgresService, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()
		defer postgresService.Close()

		totals, err := seed.NewSeeder(postgresService.DB(), log).Run(cmd.Context())
		if err != nil {
			return err
		}
		log.Info("Seed totals",
			"journal_alimentaire", totals.JournalEntries,
			"sessions_sport", totals.Sessions,
			"session_exercices", totals.SessionExercices,
			"progressions", totals.Progressions,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
