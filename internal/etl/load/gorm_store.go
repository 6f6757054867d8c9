package load

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
)

// GormStore implements Store over a gorm handle. Rows are written as maps so
// the store stays generic over table names; the backend performs the actual
// conflict merge.
type GormStore struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGormStore(db *gorm.DB, baseLog *logger.Logger) *GormStore {
	return &GormStore{db: db, log: baseLog.With("store", "GormStore")}
}

func (s *GormStore) Insert(ctx context.Context, table string, rows []frame.Row) error {
	records, err := prepareRows(rows)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Table(table).Create(records).Error
}

func (s *GormStore) Upsert(ctx context.Context, table string, rows []frame.Row, conflictCol string) error {
	records, err := prepareRows(rows)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Table(table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: conflictCol}},
			UpdateAll: true,
		}).
		Create(records).Error
}

func (s *GormStore) SelectIn(ctx context.Context, table string, cols []string, inCol string, values []any) ([]frame.Row, error) {
	var results []map[string]any
	err := s.db.WithContext(ctx).Table(table).
		Select(cols).
		Where(fmt.Sprintf("%s IN ?", inCol), values).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	rows := make([]frame.Row, len(results))
	for i, r := range results {
		rows[i] = frame.Row(r)
	}
	return rows, nil
}

// prepareRows converts frame rows into plain maps for gorm: list cells become
// jsonb payloads, everything else passes through.
func prepareRows(rows []frame.Row) ([]map[string]any, error) {
	records := make([]map[string]any, len(rows))
	for i, row := range rows {
		record := make(map[string]any, len(row))
		for col, val := range row {
			if list, ok := val.([]string); ok {
				raw, err := json.Marshal(list)
				if err != nil {
					return nil, fmt.Errorf("marshal list column %s: %w", col, err)
				}
				record[col] = datatypes.JSON(raw)
				continue
			}
			record[col] = val
		}
		records[i] = record
	}
	return records, nil
}
