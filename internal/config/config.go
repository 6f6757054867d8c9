package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/healthai/etl/internal/logger"
	"github.com/healthai/etl/internal/utils"
)

// Sources describes where each dataset is read from. Values may be overridden
// by the YAML file named in ETL_SOURCES_FILE.
type Sources struct {
	ExerciseCatalogURL string `yaml:"exercise_catalog_url"`
	ExerciseAPIKey     string `yaml:"-"`
	NutritionCSV       string `yaml:"nutrition_csv"`
	FoodsCSV           string `yaml:"foods_csv"`
	GymMembersCSV      string `yaml:"gym_members_csv"`
	DietRecoCSV        string `yaml:"diet_reco_csv"`
	RowLimit           int    `yaml:"row_limit"`
}

type Config struct {
	DatabaseDSN string
	Schedule    string
	LogMode     string
	Sources     Sources
}

const defaultCatalogURL = "https://raw.githubusercontent.com/yuhonas/free-exercise-db/main/dist/exercises.json"

// Load reads configuration from the process environment (a .env file is
// honored when present). Missing database credentials are fatal.
func Load(log *logger.Logger) (*Config, error) {
	_ = godotenv.Load()

	dsn, err := databaseDSN(log)
	if err != nil {
		return nil, err
	}

	dataDir := utils.GetEnv("DATA_DIR", "data", log)
	cfg := &Config{
		DatabaseDSN: dsn,
		Schedule:    utils.GetEnv("ETL_SCHEDULE", "0 */6 * * *", log),
		LogMode:     utils.GetEnv("LOG_MODE", "development", log),
		Sources: Sources{
			ExerciseCatalogURL: utils.GetEnv("EXERCISEDB_URL", defaultCatalogURL, log),
			ExerciseAPIKey:     utils.GetEnv("EXERCISES_API_KEY", "", log),
			NutritionCSV:       dataDir + "/daily_food_nutrition_dataset.csv",
			FoodsCSV:           utils.GetEnv("FOODS_CSV", "", log),
			GymMembersCSV:      dataDir + "/gym_members_exercise_tracking.csv",
			DietRecoCSV:        dataDir + "/diet_recommendations_dataset.csv",
			RowLimit:           utils.GetEnvAsInt("ETL_ROW_LIMIT", 0, log),
		},
	}

	if path := utils.GetEnv("ETL_SOURCES_FILE", "", log); path != "" {
		if err := overlaySourcesFile(path, &cfg.Sources); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func databaseDSN(log *logger.Logger) (string, error) {
	if dsn := utils.GetEnv("DATABASE_URL", "", log); dsn != "" {
		return dsn, nil
	}

	host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	port := utils.GetEnv("POSTGRES_PORT", "5432", log)
	user := utils.GetEnv("POSTGRES_USER", "postgres", log)
	password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	name := utils.GetEnv("POSTGRES_NAME", "healthai", log)

	if password == "" {
		return "", fmt.Errorf("database credentials missing: set DATABASE_URL or POSTGRES_PASSWORD")
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, password, host, port, name,
	), nil
}

func overlaySourcesFile(path string, dst *Sources) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read sources file %s: %w", path, err)
	}
	var overlay Sources
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return fmt.Errorf("parse sources file %s: %w", path, err)
	}
	if overlay.ExerciseCatalogURL != "" {
		dst.ExerciseCatalogURL = overlay.ExerciseCatalogURL
	}
	if overlay.NutritionCSV != "" {
		dst.NutritionCSV = overlay.NutritionCSV
	}
	if overlay.FoodsCSV != "" {
		dst.FoodsCSV = overlay.FoodsCSV
	}
	if overlay.GymMembersCSV != "" {
		dst.GymMembersCSV = overlay.GymMembersCSV
	}
	if overlay.DietRecoCSV != "" {
		dst.DietRecoCSV = overlay.DietRecoCSV
	}
	if overlay.RowLimit > 0 {
		dst.RowLimit = overlay.RowLimit
	}
	return nil
}
