package main

import (
	"github.com/spf13/cobra"

	"github.com/healthai/etl/internal/data/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the canonical tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, postgresService, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()
		defer postgresService.Close()

		if err := db.AutoMigrateAll(postgresService.DB()); err != nil {
			return err
		}
		log.Info("Migration completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
