package transform

import (
	"testing"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
)

func TestExercisesMapsCatalogRow(t *testing.T) {
	f := frame.New("name", "category", "primaryMuscles", "level", "equipment", "instructions")
	f.Append(frame.Row{
		"name":           "Barbell Squat",
		"category":       "strength",
		"primaryMuscles": []string{"quadriceps", "glutes"},
		"level":          "intermediate",
		"equipment":      "barbell",
		"instructions":   []string{"Set up the bar.", "Squat down."},
	})

	out := Exercises(f, logger.NewNop())
	if out.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", out.Len())
	}
	row := out.Rows[0]

	if row["nom"] != "Barbell Squat" {
		t.Fatalf("expected nom Barbell Squat, got %v", row["nom"])
	}
	if row["type"] != "force" {
		t.Fatalf("expected type force, got %v", row["type"])
	}
	if row["groupe_musculaire"] != "quadriceps, glutes" {
		t.Fatalf("expected joined muscle groups, got %v", row["groupe_musculaire"])
	}
	if row["niveau"] != "intermediaire" {
		t.Fatalf("expected niveau intermediaire, got %v", row["niveau"])
	}
	if row["equipement"] != "barre" {
		t.Fatalf("expected equipement barre, got %v", row["equipement"])
	}
	if row["description"] != "Exercice: Barbell Squat" {
		t.Fatalf("expected generated description, got %v", row["description"])
	}
	if row["instructions"] != "Set up the bar., Squat down." {
		t.Fatalf("expected joined instructions, got %v", row["instructions"])
	}
	if row["source"] != SourceExerciseDB {
		t.Fatalf("expected source %q, got %v", SourceExerciseDB, row["source"])
	}
}

func TestExercisesCategoryDefaults(t *testing.T) {
	f := frame.New("name", "type", "difficulty", "equipment")
	f.Append(frame.Row{"name": "Mystery Move", "type": "parkour", "difficulty": nil, "equipment": "Body Weight"})
	f.Append(frame.Row{"name": "Jog", "type": "cardio", "difficulty": "expert", "equipment": nil})
	f.Append(frame.Row{"name": "Arm Circles", "type": "stretching", "difficulty": "advanced", "equipment": ""})

	out := Exercises(f, logger.NewNop())

	if out.Rows[0]["type"] != "parkour" {
		t.Fatalf("expected unmapped type to pass through lowercased, got %v", out.Rows[0]["type"])
	}
	if out.Rows[0]["niveau"] != "debutant" {
		t.Fatalf("expected default niveau for nil difficulty, got %v", out.Rows[0]["niveau"])
	}
	if out.Rows[0]["equipement"] != "aucun" {
		t.Fatalf("expected Body Weight to map to aucun, got %v", out.Rows[0]["equipement"])
	}
	if out.Rows[1]["type"] != "cardio" {
		t.Fatalf("expected cardio, got %v", out.Rows[1]["type"])
	}
	if out.Rows[1]["niveau"] != "avance" {
		t.Fatalf("expected expert to map to avance, got %v", out.Rows[1]["niveau"])
	}
	if out.Rows[1]["equipement"] != "aucun" {
		t.Fatalf("expected nil equipment to map to aucun, got %v", out.Rows[1]["equipement"])
	}
	if out.Rows[2]["type"] != "flexibilite" {
		t.Fatalf("expected stretching to map to flexibilite, got %v", out.Rows[2]["type"])
	}
	if out.Rows[2]["niveau"] != "avance" {
		t.Fatalf("expected advanced to map to avance, got %v", out.Rows[2]["niveau"])
	}
}

func TestExercisesDropsNamelessRows(t *testing.T) {
	f := frame.New("name", "category")
	f.Append(frame.Row{"name": "", "category": "cardio"})
	f.Append(frame.Row{"name": nil, "category": "cardio"})
	f.Append(frame.Row{"name": "  Jumping Jacks  ", "category": "cardio"})

	out := Exercises(f, logger.NewNop())
	if out.Len() != 1 {
		t.Fatalf("expected nameless rows to be dropped, got %d rows", out.Len())
	}
	if out.Rows[0]["nom"] != "Jumping Jacks" {
		t.Fatalf("expected trimmed name, got %v", out.Rows[0]["nom"])
	}
}

func TestExercisesBodyPartFallbackForType(t *testing.T) {
	// Catalogs without a type column carry bodyPart instead.
	f := frame.New("name", "bodyPart")
	f.Append(frame.Row{"name": "Bench Press", "bodyPart": "chest"})

	out := Exercises(f, logger.NewNop())
	if out.Rows[0]["type"] != "force" {
		t.Fatalf("expected chest bodyPart to map to force, got %v", out.Rows[0]["type"])
	}
}
