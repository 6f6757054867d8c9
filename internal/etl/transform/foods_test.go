package transform

import (
	"testing"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
)

func TestNutritionFoods(t *testing.T) {
	f := frame.New("Food_Item", "Calories (kcal)", "Protein (g)", "Carbohydrates (g)", "Fat (g)", "Fiber (g)")
	f.Append(frame.Row{
		"Food_Item":         " Oatmeal ",
		"Calories (kcal)":   "389",
		"Protein (g)":       "16.9",
		"Carbohydrates (g)": "66.3",
		"Fat (g)":           "6.9",
		"Fiber (g)":         "-1",
	})
	f.Append(frame.Row{"Food_Item": ""})

	out := NutritionFoods(f, logger.NewNop())
	if out.Len() != 1 {
		t.Fatalf("expected nameless row to be dropped, got %d rows", out.Len())
	}
	row := out.Rows[0]

	if row["nom"] != "Oatmeal" {
		t.Fatalf("expected trimmed nom, got %v", row["nom"])
	}
	if row["calories"] != 389.0 {
		t.Fatalf("expected calories 389, got %v", row["calories"])
	}
	if row["fibres"] != 0.0 {
		t.Fatalf("expected negative fiber clamped to 0, got %v", row["fibres"])
	}
	if row["unite"] != DefaultUnit {
		t.Fatalf("expected default unit, got %v", row["unite"])
	}
	if row["source"] != SourceNutritionDataset {
		t.Fatalf("expected source %q, got %v", SourceNutritionDataset, row["source"])
	}
}

func TestCSVFoodsResolvesSynonyms(t *testing.T) {
	f := frame.New("food_name", "Calories", "proteins", "carbs", "fats")
	f.Append(frame.Row{
		"food_name": "Lentilles",
		"Calories":  "116",
		"proteins":  "9",
		"carbs":     "20",
		"fats":      "0.4",
	})

	out := CSVFoods(f, logger.NewNop())
	row := out.Rows[0]

	if row["nom"] != "Lentilles" {
		t.Fatalf("expected nom from food_name, got %v", row["nom"])
	}
	if row["proteines"] != 9.0 {
		t.Fatalf("expected proteines from proteins synonym, got %v", row["proteines"])
	}
	if row["glucides"] != 20.0 {
		t.Fatalf("expected glucides from carbs synonym, got %v", row["glucides"])
	}
	if row["fibres"] != 0.0 {
		t.Fatalf("expected absent fiber to default to 0, got %v", row["fibres"])
	}
	if row["unite"] != DefaultUnit {
		t.Fatalf("expected default unit, got %v", row["unite"])
	}
	if row["source"] != SourceKaggleCSV {
		t.Fatalf("expected source %q, got %v", SourceKaggleCSV, row["source"])
	}
}
