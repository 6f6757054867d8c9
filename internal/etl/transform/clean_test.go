package transform

import (
	"reflect"
	"testing"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
)

func TestCleanDeduplicates(t *testing.T) {
	f := frame.New("nom", "calories")
	f.Append(frame.Row{"nom": "pomme", "calories": 52.0})
	f.Append(frame.Row{"nom": "pomme", "calories": 52.0})
	f.Append(frame.Row{"nom": "poire", "calories": 57.0})

	out := Clean(f, logger.NewNop())
	if out.Len() != 2 {
		t.Fatalf("expected 2 rows after dedup, got %d", out.Len())
	}
}

func TestCleanDropsAllNilRows(t *testing.T) {
	f := frame.New("a", "b")
	f.Append(frame.Row{"a": nil, "b": nil})
	f.Append(frame.Row{"a": "x", "b": nil})

	out := Clean(f, logger.NewNop())
	if out.Len() != 1 {
		t.Fatalf("expected the all-nil row to be dropped, got %d rows", out.Len())
	}
	if out.Rows[0]["a"] != "x" {
		t.Fatalf("expected the partial row to survive, got %v", out.Rows[0])
	}
}

func TestCleanStringifiesListsForDedup(t *testing.T) {
	f := frame.New("email", "objectifs")
	f.Append(frame.Row{"email": "a@x.com", "objectifs": []string{"fitness"}})
	f.Append(frame.Row{"email": "a@x.com", "objectifs": []string{"fitness"}})

	out := Clean(f, logger.NewNop())
	if out.Len() != 1 {
		t.Fatalf("expected list columns to participate in dedup, got %d rows", out.Len())
	}
	if _, ok := out.Rows[0]["objectifs"].(string); !ok {
		t.Fatalf("expected list cell to be stringified, got %T", out.Rows[0]["objectifs"])
	}
}

func TestRestoreListColumnsRoundTrip(t *testing.T) {
	cases := [][]string{
		{"Entraînement: Yoga", "l'équilibre"},
		{`objectif avec backslash \ au milieu`},
		{`termine par backslash \`, "suivant"},
		{`\'quote échappée`, `double \\ backslash`},
	}
	for _, want := range cases {
		f := frame.New("objectifs")
		f.Append(frame.Row{"objectifs": append([]string(nil), want...)})

		out := Clean(f, logger.NewNop())
		out = RestoreListColumns(out, []string{"objectifs"}, logger.NewNop())

		got, ok := out.Rows[0]["objectifs"].([]string)
		if !ok {
			t.Fatalf("expected []string after restore, got %T", out.Rows[0]["objectifs"])
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRestoreListColumnsLeavesPlainStrings(t *testing.T) {
	f := frame.New("objectifs")
	f.Append(frame.Row{"objectifs": "fitness"})

	out := RestoreListColumns(f, []string{"objectifs"}, logger.NewNop())
	if out.Rows[0]["objectifs"] != "fitness" {
		t.Fatalf("expected plain string to pass through, got %v", out.Rows[0]["objectifs"])
	}
}

func TestCleanKeepsRowsDifferingOnlyByCellBoundaries(t *testing.T) {
	// Cell values containing the key separator byte must not make distinct
	// rows collide onto one dedup key.
	f := frame.New("a", "b")
	f.Append(frame.Row{"a": "x\x1f", "b": "y"})
	f.Append(frame.Row{"a": "x", "b": "\x1fy"})

	out := Clean(f, logger.NewNop())
	if out.Len() != 2 {
		t.Fatalf("expected both rows to survive, got %d", out.Len())
	}
}

func TestParseListStringEmpty(t *testing.T) {
	got := parseListString("[]")
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}
