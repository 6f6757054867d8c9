package transform

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
	"github.com/healthai/etl/internal/types"
)

const gymEmailDomain = "healthai.com"

// GymMemberEmail synthesizes the deterministic pseudo-email for row i of the
// gym members dataset. The zero-padded index makes re-runs against the same
// file upsert onto the same users instead of multiplying them.
func GymMemberEmail(index int) string {
	return fmt.Sprintf("gym.member.%04d@%s", index, gymEmailDomain)
}

var experienceTierTable = map[int64]string{
	1: types.AbonnementFreemium,
	2: types.AbonnementFreemium,
	3: types.AbonnementPremium,
}

// GymMembersUsers maps the Gym Members Exercise dataset onto the utilisateurs
// schema. Source columns: Age, Gender, Weight (kg), Height (m), Workout_Type,
// Experience_Level.
func GymMembersUsers(f *frame.Frame, log *logger.Logger) *frame.Frame {
	out := frame.New("email", "nom", "prenom", "age", "sexe", "poids", "taille", "type_abonnement", "objectifs")
	for i, row := range f.Rows {
		sexe := normalizeSexe(row["Gender"])
		out.Append(frame.Row{
			"email":           GymMemberEmail(i),
			"nom":             nomFor(i),
			"prenom":          prenomFor(sexe, i),
			"age":             cellOrNil(toInt(row["Age"])),
			"sexe":            sexe,
			"poids":           cellOrNil(measurement(row["Weight (kg)"], 1)),
			"taille":          cellOrNil(measurement(row["Height (m)"], 100)), // meters to centimeters
			"type_abonnement": experienceTier(row["Experience_Level"]),
			"objectifs":       workoutGoals(row["Workout_Type"]),
		})
	}
	log.Info("Transformed utilisateurs from gym members dataset", "rows", out.Len())
	return out
}

// GymMembersMeasurements maps the same dataset onto mesures_biometriques,
// resolving each row's synthesized email through the post-insert id map. Rows
// whose email has no resolved id are dropped.
func GymMembersMeasurements(f *frame.Frame, emailToID map[string]uuid.UUID, log *logger.Logger) *frame.Frame {
	out := frame.New("id_utilisateur", "poids", "frequence_cardiaque", "sommeil", "calories_brulees")
	dropped := 0
	for i, row := range f.Rows {
		id, ok := emailToID[GymMemberEmail(i)]
		if !ok {
			dropped++
			continue
		}
		out.Append(frame.Row{
			"id_utilisateur":      id,
			"poids":               cellOrNil(measurement(row["Weight (kg)"], 1)),
			"frequence_cardiaque": cellOrNil(toInt(row["Avg_BPM"])),
			"sommeil":             nil, // not available in this dataset
			"calories_brulees":    cellOrNil(measurement(row["Calories_Burned"], 1)),
		})
	}
	log.Info("Transformed mesures from gym members dataset", "rows", out.Len(), "dropped_unlinked", dropped)
	return out
}

func normalizeSexe(v any) string {
	s, _ := asString(v)
	switch s {
	case "Male":
		return "M"
	case "Female":
		return "F"
	default:
		return "Autre"
	}
}

func experienceTier(v any) string {
	level := toInt(v)
	if level == nil {
		return types.AbonnementFreemium
	}
	if tier, ok := experienceTierTable[*level]; ok {
		return tier
	}
	return types.AbonnementFreemium
}

func workoutGoals(v any) []string {
	wt, ok := asString(v)
	if !ok || strings.TrimSpace(wt) == "" {
		return []string{"fitness"}
	}
	return []string{fmt.Sprintf("Entraînement: %s", strings.TrimSpace(wt))}
}

// cellOrNil unwraps typed pointers into frame cells so that absent values are
// stored as untyped nil rather than typed nil pointers.
func cellOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
