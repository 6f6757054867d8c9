package transform

import (
	"fmt"
	"strings"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
)

// Clean deduplicates rows and drops rows that are nil in every column.
//
// List-valued cells are stringified first so they can participate in the
// dedup key; RestoreListColumns reverses that right before load. Dedup runs
// over the subset of columns whose cells are all scalar after stringification.
// If no column qualifies the dedup is skipped, which means duplicates pass
// through uncaught, so the skip is logged with the full column list.
func Clean(f *frame.Frame, log *logger.Logger) *frame.Frame {
	for _, col := range f.Columns {
		stringifyListCells(f, col)
	}

	hashable := hashableColumns(f)
	out := frame.New(f.Columns...)
	seen := make(map[string]struct{}, len(f.Rows))

	if len(hashable) == 0 && len(f.Columns) > 0 {
		log.Warn("No hashable columns, skipping deduplication", "columns", f.Columns)
	}

	for _, row := range f.Rows {
		if allNil(row, f.Columns) {
			continue
		}
		if len(hashable) > 0 {
			key := dedupKey(row, hashable)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		out.Append(row)
	}

	log.Info("Cleaned data", "rows", out.Len())
	return out
}

// RestoreListColumns parses the stringified list form back into []string for
// the named columns. Postgres-bound list columns need the structured value,
// not its string image.
func RestoreListColumns(f *frame.Frame, columns []string, log *logger.Logger) *frame.Frame {
	for _, col := range columns {
		if !f.Has(col) {
			continue
		}
		for _, row := range f.Rows {
			s, ok := asString(row[col])
			if !ok || !strings.HasPrefix(s, "[") {
				continue
			}
			row[col] = parseListString(s)
		}
	}
	return f
}

func stringifyListCells(f *frame.Frame, col string) {
	for _, row := range f.Rows {
		if list, ok := row[col].([]string); ok {
			row[col] = listToString(list)
		}
	}
}

// hashableColumns returns the columns whose cells are all scalar. Anything
// that is not nil, string, bool or a numeric is treated as unhashable.
func hashableColumns(f *frame.Frame) []string {
	var cols []string
	for _, col := range f.Columns {
		ok := true
		for _, row := range f.Rows {
			switch row[col].(type) {
			case nil, string, bool, float64, int64, int:
			default:
				ok = false
			}
			if !ok {
				break
			}
		}
		if ok {
			cols = append(cols, col)
		}
	}
	return cols
}

func allNil(row frame.Row, columns []string) bool {
	for _, col := range columns {
		if row[col] != nil {
			return false
		}
	}
	return true
}

// dedupKey quotes each cell so separator bytes inside values cannot collide
// across column boundaries.
func dedupKey(row frame.Row, columns []string) string {
	var b strings.Builder
	for _, col := range columns {
		fmt.Fprintf(&b, "%q\x1f", fmt.Sprint(row[col]))
	}
	return b.String()
}

// listToString renders a []string as a bracketed literal, the form the
// restore step parses back. Backslashes are escaped before quotes so the
// parser's escape handling round-trips both.
func listToString(list []string) string {
	parts := make([]string, len(list))
	for i, item := range list {
		escaped := strings.ReplaceAll(item, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, "'", `\'`)
		parts[i] = "'" + escaped + "'"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func parseListString(s string) []string {
	body := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	if strings.TrimSpace(body) == "" {
		return []string{}
	}

	var items []string
	var current strings.Builder
	inQuote := false
	escaped := false
	for _, r := range body {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '\'':
			if inQuote {
				items = append(items, current.String())
				current.Reset()
			}
			inQuote = !inQuote
		case inQuote:
			current.WriteRune(r)
		}
	}
	return items
}
