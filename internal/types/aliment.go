package types

import (
	"time"

	"github.com/google/uuid"
)

// Aliment is a food item with macros per declared serving unit. Nom is the
// natural key for upsert conflict resolution.
type Aliment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:id_aliment" json:"id_aliment"`
	Nom       string    `gorm:"uniqueIndex;not null;column:nom" json:"nom"`
	Calories  float64   `gorm:"not null;default:0;column:calories" json:"calories"`
	Proteines float64   `gorm:"not null;default:0;column:proteines" json:"proteines"`
	Glucides  float64   `gorm:"not null;default:0;column:glucides" json:"glucides"`
	Lipides   float64   `gorm:"not null;default:0;column:lipides" json:"lipides"`
	Fibres    float64   `gorm:"not null;default:0;column:fibres" json:"fibres"`
	Unite     string    `gorm:"not null;default:100g;column:unite" json:"unite"`
	Source    string    `gorm:"column:source" json:"source"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Aliment) TableName() string {
	return "aliments"
}
