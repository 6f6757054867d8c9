package transform

import (
	"fmt"
	"strings"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
	"github.com/healthai/etl/internal/types"
)

const SourceExerciseDB = "ExerciseDB API"

// exerciseMapping covers the column spellings seen across catalog providers.
var exerciseMapping = []FieldSpec{
	{Target: "nom", Sources: []string{"name"}},
	{Target: "type", Sources: []string{"type", "category", "bodyPart"}, Default: types.ExerciceTypeAutre},
	{Target: "groupe_musculaire", Sources: []string{"target", "muscle", "primaryMuscles"}},
	{Target: "niveau", Sources: []string{"difficulty", "level"}, Default: types.NiveauDebutant},
	{Target: "equipement", Sources: []string{"equipment"}, Default: "aucun"},
	{Target: "instructions", Sources: []string{"instructions"}},
}

var exerciseTypeTable = map[string]string{
	"strength":              types.ExerciceTypeForce,
	"powerlifting":          types.ExerciceTypeForce,
	"strongman":             types.ExerciceTypeForce,
	"olympic_weightlifting": types.ExerciceTypeForce,
	"olympic weightlifting": types.ExerciceTypeForce,
	"chest":                 types.ExerciceTypeForce,
	"back":                  types.ExerciceTypeForce,
	"shoulders":             types.ExerciceTypeForce,
	"arms":                  types.ExerciceTypeForce,
	"legs":                  types.ExerciceTypeForce,
	"stretching":            types.ExerciceTypeFlexibilite,
	"cardio":                types.ExerciceTypeCardio,
}

var exerciseLevelTable = map[string]string{
	"beginner":     types.NiveauDebutant,
	"intermediate": types.NiveauIntermediaire,
	"expert":       types.NiveauAvance,
	"advanced":     types.NiveauAvance,
}

var equipmentTable = map[string]string{
	"body weight": "aucun",
	"none":        "aucun",
	"":            "aucun",
	"dumbbell":    "haltères",
	"barbell":     "barre",
	"cable":       "câble",
	"machine":     "machine",
}

// Exercises maps raw catalog rows onto the exercices schema.
func Exercises(f *frame.Frame, log *logger.Logger) *frame.Frame {
	mapped := ApplyMapping(f, exerciseMapping)

	out := frame.New("nom", "type", "groupe_musculaire", "niveau", "equipement", "description", "instructions", "source")
	for _, row := range mapped.Rows {
		nom, ok := asString(row["nom"])
		if !ok || strings.TrimSpace(nom) == "" {
			continue
		}
		nom = strings.TrimSpace(nom)

		out.Append(frame.Row{
			"nom":               nom,
			"type":              normalizeCategory(row["type"], exerciseTypeTable, types.ExerciceTypeAutre),
			"groupe_musculaire": muscleGroup(row["groupe_musculaire"]),
			"niveau":            normalizeCategory(row["niveau"], exerciseLevelTable, types.NiveauDebutant),
			"equipement":        normalizeCategory(row["equipement"], equipmentTable, "aucun"),
			"description":       fmt.Sprintf("Exercice: %s", nom),
			"instructions":      joinInstructions(row["instructions"]),
			"source":            SourceExerciseDB,
		})
	}

	log.Info("Transformed exercises", "rows", out.Len())
	return out
}

// muscleGroup keeps free text as-is and collapses list-valued muscle columns
// to a comma-joined string. Absent stays nil (the column is nullable).
func muscleGroup(v any) any {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) == 0 {
			return nil
		}
		return strings.Join(val, ", ")
	default:
		return nil
	}
}

func joinInstructions(v any) any {
	switch val := v.(type) {
	case []string:
		return strings.Join(val, ", ")
	case string:
		return val
	default:
		return nil
	}
}
