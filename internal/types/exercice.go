package types

import (
	"time"

	"github.com/google/uuid"
)

// Exercise categories and levels, as stored. Transformers normalize the many
// source vocabularies onto these values.
const (
	ExerciceTypeCardio      = "cardio"
	ExerciceTypeForce       = "force"
	ExerciceTypeFlexibilite = "flexibilite"
	ExerciceTypeEquilibre   = "equilibre"
	ExerciceTypeAutre       = "autre"

	NiveauDebutant      = "debutant"
	NiveauIntermediaire = "intermediaire"
	NiveauAvance        = "avance"
)

// Exercice is a catalog exercise. Nom is the natural key for upsert conflict
// resolution.
type Exercice struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:id_exercice" json:"id_exercice"`
	Nom              string    `gorm:"uniqueIndex;not null;column:nom" json:"nom"`
	Type             string    `gorm:"column:type" json:"type"`
	GroupeMusculaire *string   `gorm:"column:groupe_musculaire" json:"groupe_musculaire"`
	Niveau           string    `gorm:"not null;default:debutant;column:niveau" json:"niveau"`
	Equipement       string    `gorm:"not null;default:aucun;column:equipement" json:"equipement"`
	Description      string    `gorm:"column:description" json:"description"`
	Instructions     string    `gorm:"column:instructions" json:"instructions"`
	Source           string    `gorm:"column:source" json:"source"`
	CreatedAt        time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Exercice) TableName() string {
	return "exercices"
}
