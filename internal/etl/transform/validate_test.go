package transform

import (
	"errors"
	"reflect"
	"testing"

	"github.com/healthai/etl/internal/etl/frame"
)

func TestValidateRequired(t *testing.T) {
	f := frame.New("nom", "calories")

	if err := ValidateRequired(f, []string{"nom", "calories"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := ValidateRequired(f, []string{"nom", "proteines", "glucides"})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	want := []string{"proteines", "glucides"}
	if !reflect.DeepEqual(verr.Missing, want) {
		t.Fatalf("expected missing %v, got %v", want, verr.Missing)
	}
}
