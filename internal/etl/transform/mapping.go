// Package transform maps source-specific tabular data onto the canonical
// entity schemas, then cleans and validates it before load.
package transform

import (
	"strings"

	"github.com/healthai/etl/internal/etl/frame"
)

// FieldSpec declares how one canonical column is sourced: an ordered list of
// acceptable source column names plus a default when none is present. The
// synonym lists make the column-presence heuristics auditable in one place
// instead of being spread over per-field conditionals.
type FieldSpec struct {
	Target  string
	Sources []string
	Default any
}

// ApplyMapping builds a new frame with exactly the target column set. For each
// spec the first source column present in the input wins; sources absent from
// the input fall back to the default. Cell-level nils are preserved.
func ApplyMapping(f *frame.Frame, specs []FieldSpec) *frame.Frame {
	resolved := make(map[string]string, len(specs))
	targets := make([]string, 0, len(specs))
	for _, spec := range specs {
		targets = append(targets, spec.Target)
		for _, src := range spec.Sources {
			if f.Has(src) {
				resolved[spec.Target] = src
				break
			}
		}
	}

	out := frame.New(targets...)
	for _, row := range f.Rows {
		outRow := frame.Row{}
		for _, spec := range specs {
			src, ok := resolved[spec.Target]
			if !ok {
				outRow[spec.Target] = spec.Default
				continue
			}
			outRow[spec.Target] = row[src]
		}
		out.Append(outRow)
	}
	return out
}

// normalizeCategory lowercases a categorical value and maps it through the
// lookup table. Unmapped values pass through lowercased; nil or empty values
// take the fallback.
func normalizeCategory(v any, table map[string]string, fallback string) string {
	s, ok := asString(v)
	if !ok || strings.TrimSpace(s) == "" {
		if mapped, found := table[""]; found {
			return mapped
		}
		return fallback
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if mapped, found := table[s]; found {
		return mapped
	}
	return s
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
