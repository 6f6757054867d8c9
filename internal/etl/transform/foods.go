package transform

import (
	"strings"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
)

const (
	SourceNutritionDataset = "Kaggle - Daily Food & Nutrition Dataset"
	SourceKaggleCSV        = "Kaggle Dataset"
	DefaultUnit            = "100g"
)

// NutritionFoods maps the Daily Food & Nutrition dataset onto the aliments
// schema. Source columns are fixed: Food_Item, Calories (kcal), Protein (g),
// Carbohydrates (g), Fat (g), Fiber (g).
func NutritionFoods(f *frame.Frame, log *logger.Logger) *frame.Frame {
	out := frame.New("nom", "calories", "proteines", "glucides", "lipides", "fibres", "unite", "source")
	for _, row := range f.Rows {
		nom, ok := asString(row["Food_Item"])
		if !ok || strings.TrimSpace(nom) == "" {
			continue
		}
		out.Append(frame.Row{
			"nom":       strings.TrimSpace(nom),
			"calories":  nutritionValue(row["Calories (kcal)"]),
			"proteines": nutritionValue(row["Protein (g)"]),
			"glucides":  nutritionValue(row["Carbohydrates (g)"]),
			"lipides":   nutritionValue(row["Fat (g)"]),
			"fibres":    nutritionValue(row["Fiber (g)"]),
			"unite":     DefaultUnit,
			"source":    SourceNutritionDataset,
		})
	}
	log.Info("Transformed foods from nutrition dataset", "rows", out.Len())
	return out
}

// csvFoodMapping lists the historical column spellings of the public
// nutrition CSVs the platform has loaded over time.
var csvFoodMapping = []FieldSpec{
	{Target: "nom", Sources: []string{"name", "food_name", "Food"}},
	{Target: "calories", Sources: []string{"calories", "Calories"}, Default: 0.0},
	{Target: "proteines", Sources: []string{"protein", "Protein", "proteins"}, Default: 0.0},
	{Target: "glucides", Sources: []string{"carbohydrate", "Carbohydrate", "carbs"}, Default: 0.0},
	{Target: "lipides", Sources: []string{"fat", "Fat", "fats"}, Default: 0.0},
	{Target: "fibres", Sources: []string{"fiber", "Fiber", "fibers"}, Default: 0.0},
	{Target: "unite", Sources: []string{"unit", "Unit"}, Default: DefaultUnit},
}

// CSVFoods maps an arbitrary nutrition CSV onto the aliments schema using the
// synonym table above.
func CSVFoods(f *frame.Frame, log *logger.Logger) *frame.Frame {
	mapped := ApplyMapping(f, csvFoodMapping)

	out := frame.New("nom", "calories", "proteines", "glucides", "lipides", "fibres", "unite", "source")
	for _, row := range mapped.Rows {
		nom, ok := asString(row["nom"])
		if !ok || strings.TrimSpace(nom) == "" {
			continue
		}
		unite, ok := asString(row["unite"])
		if !ok || unite == "" {
			unite = DefaultUnit
		}
		out.Append(frame.Row{
			"nom":       strings.TrimSpace(nom),
			"calories":  nutritionValue(row["calories"]),
			"proteines": nutritionValue(row["proteines"]),
			"glucides":  nutritionValue(row["glucides"]),
			"lipides":   nutritionValue(row["lipides"]),
			"fibres":    nutritionValue(row["fibres"]),
			"unite":     unite,
			"source":    SourceKaggleCSV,
		})
	}
	log.Info("Transformed foods from CSV", "rows", out.Len())
	return out
}
