package load

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
)

const (
	// Plain inserts go through in large batches.
	InsertBatchSize = 1000
	// The backend rejects large upsert payloads, so upserts use smaller ones.
	UpsertBatchSize = 100
)

// Loader submits rows sequentially, one synchronous call per batch. No
// parallel submission.
type Loader struct {
	store Store
	log   *logger.Logger
}

func NewLoader(store Store, baseLog *logger.Logger) *Loader {
	return &Loader{store: store, log: baseLog.With("component", "Loader")}
}

// Insert loads rows in batches of InsertBatchSize. The first failing batch
// aborts the whole load; there is no partial-success bookkeeping for inserts.
func (l *Loader) Insert(ctx context.Context, table string, rows []frame.Row) error {
	if len(rows) == 0 {
		return nil
	}
	for i, batch := range chunk(rows, InsertBatchSize) {
		if err := l.store.Insert(ctx, table, batch); err != nil {
			return &Error{Table: table, Batch: i + 1, Err: err}
		}
		l.log.Info("Inserted batch", "table", table, "batch", i+1, "rows", len(batch))
	}
	l.log.Info("Loaded records", "table", table, "rows", len(rows))
	return nil
}

// Upsert loads rows in batches of UpsertBatchSize, keyed on conflictCol. A
// failing batch degrades to per-row submission; rows that still fail are
// dropped and counted in the result rather than aborting later batches.
func (l *Loader) Upsert(ctx context.Context, table string, rows []frame.Row, conflictCol string) (Result, error) {
	var result Result
	if len(rows) == 0 {
		return result, nil
	}

	batches := chunk(rows, UpsertBatchSize)
	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		err := l.store.Upsert(ctx, table, batch, conflictCol)
		if err == nil {
			result.Inserted += len(batch)
			l.log.Info("Upserted batch", "table", table, "batch", i+1, "of", len(batches), "rows", len(batch))
			continue
		}

		l.log.Warn("Batch upsert failed, retrying rows individually", "table", table, "batch", i+1, "error", err)
		result.merge(l.upsertRowByRow(ctx, table, batch, conflictCol))
	}

	l.log.Info("Upsert completed", "table", table,
		"inserted", result.Inserted, "conflicted", result.Conflicted, "failed", result.Failed)
	return result, nil
}

func (l *Loader) upsertRowByRow(ctx context.Context, table string, batch []frame.Row, conflictCol string) Result {
	var result Result
	for _, row := range batch {
		err := l.store.Upsert(ctx, table, []frame.Row{row}, conflictCol)
		switch {
		case err == nil:
			result.Inserted++
		case isConstraintViolation(err):
			result.Conflicted++
		default:
			result.Failed++
			l.log.Debug("Dropping row after retry failure", "table", table, "error", err)
		}
	}
	return result
}

// isConstraintViolation reports whether the backend rejected the row for an
// integrity constraint (SQLSTATE class 23), the expected flavor of upsert
// fallout, as opposed to a transport or syntax failure.
func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}

func chunk(rows []frame.Row, size int) [][]frame.Row {
	var batches [][]frame.Row
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		batches = append(batches, rows[start:end])
	}
	return batches
}
