// Package frame holds the tabular in-memory structure every ETL stage works
// on: named columns over rows of loosely typed cells. Cell values are nil,
// string, float64, int64 or []string.
package frame

// Row is one record keyed by column name. A missing key and a nil value are
// both treated as absent.
type Row = map[string]any

type Frame struct {
	Columns []string
	Rows    []Row
}

func New(columns ...string) *Frame {
	return &Frame{Columns: columns}
}

func (f *Frame) Len() int { return len(f.Rows) }

func (f *Frame) Has(column string) bool {
	for _, c := range f.Columns {
		if c == column {
			return true
		}
	}
	return false
}

func (f *Frame) Append(row Row) {
	f.Rows = append(f.Rows, row)
}

// Head truncates to the first n rows. Non-positive n leaves the frame intact;
// row caps are applied after full materialization, never while reading.
func (f *Frame) Head(n int) *Frame {
	if n <= 0 || n >= len(f.Rows) {
		return f
	}
	f.Rows = f.Rows[:n]
	return f
}

// AddColumn registers a column name without touching the rows.
func (f *Frame) AddColumn(column string) {
	if !f.Has(column) {
		f.Columns = append(f.Columns, column)
	}
}
