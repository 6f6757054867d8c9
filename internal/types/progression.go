package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProgressionPoids       = "poids"
	ProgressionRepetitions = "repetitions"
	ProgressionDuree       = "duree"
)

// Progression records a before/after improvement on one exercise.
type Progression struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:id_progression" json:"id_progression"`
	IDUtilisateur   uuid.UUID `gorm:"type:uuid;not null;index;column:id_utilisateur" json:"id_utilisateur"`
	IDExercice      uuid.UUID `gorm:"type:uuid;not null;index;column:id_exercice" json:"id_exercice"`
	DateProgression time.Time `gorm:"not null;column:date_progression" json:"date_progression"`
	ValeurAvant     float64   `gorm:"not null;column:valeur_avant" json:"valeur_avant"`
	ValeurApres     float64   `gorm:"not null;column:valeur_apres" json:"valeur_apres"`
	TypeProgression string    `gorm:"not null;column:type_progression" json:"type_progression"`
	CreatedAt       time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Progression) TableName() string {
	return "progressions"
}
