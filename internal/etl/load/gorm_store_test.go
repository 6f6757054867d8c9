package load

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(`CREATE TABLE aliments (
		nom TEXT NOT NULL UNIQUE,
		calories REAL,
		source TEXT
	)`).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func TestGormStoreInsertAndSelectIn(t *testing.T) {
	db := openTestDB(t)
	store := NewGormStore(db, logger.NewNop())
	ctx := context.Background()

	rows := []frame.Row{
		{"nom": "pomme", "calories": 52.0, "source": "test"},
		{"nom": "poire", "calories": 57.0, "source": "test"},
	}
	if err := store.Insert(ctx, "aliments", rows); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := store.SelectIn(ctx, "aliments", []string{"nom", "calories"}, "nom", []any{"pomme"})
	if err != nil {
		t.Fatalf("select in: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0]["nom"] != "pomme" {
		t.Fatalf("expected pomme, got %v", got[0]["nom"])
	}
}

func TestGormStoreUpsertMergesOnConflict(t *testing.T) {
	db := openTestDB(t)
	store := NewGormStore(db, logger.NewNop())
	ctx := context.Background()

	first := []frame.Row{{"nom": "pomme", "calories": 52.0, "source": "v1"}}
	if err := store.Upsert(ctx, "aliments", first, "nom"); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := []frame.Row{{"nom": "pomme", "calories": 55.0, "source": "v2"}}
	if err := store.Upsert(ctx, "aliments", second, "nom"); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	if err := db.Table("aliments").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected conflict merge into 1 row, got %d", count)
	}

	got, err := store.SelectIn(ctx, "aliments", []string{"calories", "source"}, "nom", []any{"pomme"})
	if err != nil {
		t.Fatalf("select in: %v", err)
	}
	if got[0]["source"] != "v2" {
		t.Fatalf("expected the new values to win, got %v", got[0]["source"])
	}
}

func TestGormStoreInsertRejectsDuplicates(t *testing.T) {
	db := openTestDB(t)
	store := NewGormStore(db, logger.NewNop())
	ctx := context.Background()

	rows := []frame.Row{{"nom": "pomme", "calories": 52.0}}
	if err := store.Insert(ctx, "aliments", rows); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.Insert(ctx, "aliments", rows); err == nil {
		t.Fatalf("expected unique violation on plain insert")
	}
}
