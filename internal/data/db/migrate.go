package db

import (
	"gorm.io/gorm"

	"github.com/healthai/etl/internal/types"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Canonical entities written by the pipeline
		&types.Utilisateur{},
		&types.Aliment{},
		&types.Exercice{},
		&types.MesureBiometrique{},

		// Activity tables written by the CRUD layer and the seed command
		&types.JournalEntree{},
		&types.SessionSport{},
		&types.SessionExercice{},
		&types.Progression{},
	)
}
