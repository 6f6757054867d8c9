package types

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntree records a food consumption. Created by the CRUD layer or by
// the seed command, never by the pipeline itself.
type JournalEntree struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:id_entree" json:"id_entree"`
	IDUtilisateur    uuid.UUID `gorm:"type:uuid;not null;index;column:id_utilisateur" json:"id_utilisateur"`
	IDAliment        uuid.UUID `gorm:"type:uuid;not null;index;column:id_aliment" json:"id_aliment"`
	Quantite         float64   `gorm:"not null;column:quantite" json:"quantite"`
	DateConsommation time.Time `gorm:"not null;column:date_consommation" json:"date_consommation"`
	CreatedAt        time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (JournalEntree) TableName() string {
	return "journal_alimentaire"
}
