package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Subscription tiers. B2B accounts are created by the CRM layer, never by the
// ETL pipeline, but the column accepts the full set.
const (
	AbonnementFreemium    = "freemium"
	AbonnementPremium     = "premium"
	AbonnementPremiumPlus = "premium+"
	AbonnementB2B         = "B2B"
)

// Utilisateur is a platform user. Email is the natural key used for upsert
// conflict resolution; the UUID surrogate id is assigned by Postgres on insert.
type Utilisateur struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:id_utilisateur" json:"id_utilisateur"`
	Email          string         `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Nom            string         `gorm:"column:nom" json:"nom"`
	Prenom         string         `gorm:"column:prenom" json:"prenom"`
	Age            *int64         `gorm:"column:age" json:"age"`
	Sexe           string         `gorm:"column:sexe" json:"sexe"`
	Poids          *float64       `gorm:"column:poids" json:"poids"`
	Taille         *float64       `gorm:"column:taille" json:"taille"`
	TypeAbonnement string         `gorm:"not null;default:freemium;column:type_abonnement" json:"type_abonnement"`
	Objectifs      datatypes.JSON `gorm:"type:jsonb;column:objectifs" json:"objectifs"` // []string
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Utilisateur) TableName() string {
	return "utilisateurs"
}
