package types

import (
	"time"

	"github.com/google/uuid"
)

// MesureBiometrique is a biometric sample linked to a user by surrogate id.
// There is no natural key: re-running the pipeline appends a new sample set.
type MesureBiometrique struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:id_mesure" json:"id_mesure"`
	IDUtilisateur      uuid.UUID `gorm:"type:uuid;not null;index;column:id_utilisateur" json:"id_utilisateur"`
	Poids              *float64  `gorm:"column:poids" json:"poids"`
	FrequenceCardiaque *int64    `gorm:"column:frequence_cardiaque" json:"frequence_cardiaque"`
	Sommeil            *float64  `gorm:"column:sommeil" json:"sommeil"`
	CaloriesBrulees    *float64  `gorm:"column:calories_brulees" json:"calories_brulees"`
	CreatedAt          time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (MesureBiometrique) TableName() string {
	return "mesures_biometriques"
}
