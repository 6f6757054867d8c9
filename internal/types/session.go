package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	IntensiteFaible  = "faible"
	IntensiteModeree = "moderee"
	IntensiteElevee  = "elevee"
)

// SessionSport is a workout session.
type SessionSport struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:id_session" json:"id_session"`
	IDUtilisateur uuid.UUID `gorm:"type:uuid;not null;index;column:id_utilisateur" json:"id_utilisateur"`
	Duree         int64     `gorm:"not null;column:duree" json:"duree"`
	Intensite     string    `gorm:"not null;column:intensite" json:"intensite"`
	DateSession   time.Time `gorm:"not null;column:date_session" json:"date_session"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (SessionSport) TableName() string {
	return "sessions_sport"
}

// SessionExercice links an exercise performed during a session.
type SessionExercice struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey;column:id_session_exercice" json:"id_session_exercice"`
	IDSession         uuid.UUID `gorm:"type:uuid;not null;index;column:id_session" json:"id_session"`
	IDExercice        uuid.UUID `gorm:"type:uuid;not null;index;column:id_exercice" json:"id_exercice"`
	NombreSeries      int64     `gorm:"not null;column:nombre_series" json:"nombre_series"`
	NombreRepetitions int64     `gorm:"not null;column:nombre_repetitions" json:"nombre_repetitions"`
	Poids             float64   `gorm:"column:poids" json:"poids"`
	CreatedAt         time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (SessionExercice) TableName() string {
	return "session_exercices"
}
