// Package load writes canonical rows into the shared store in fixed-size
// sequential batches.
package load

import (
	"context"
	"fmt"

	"github.com/healthai/etl/internal/etl/frame"
)

// Store is the minimal contract the pipeline needs from the storage backend:
// plain insert, upsert keyed on one column, and a filtered select with an IN
// clause. Any backend covering these three is substitutable.
type Store interface {
	Insert(ctx context.Context, table string, rows []frame.Row) error
	Upsert(ctx context.Context, table string, rows []frame.Row, conflictCol string) error
	SelectIn(ctx context.Context, table string, cols []string, inCol string, values []any) ([]frame.Row, error)
}

// Error wraps a batch load failure.
type Error struct {
	Table string
	Batch int
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("load failed for table %s (batch %d): %v", e.Table, e.Batch, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Result carries the per-row outcome of an upsert, so partial failures are
// surfaced to the caller instead of only to the log stream.
type Result struct {
	Inserted   int
	Conflicted int
	Failed     int
}

func (r *Result) merge(o Result) {
	r.Inserted += o.Inserted
	r.Conflicted += o.Conflicted
	r.Failed += o.Failed
}
