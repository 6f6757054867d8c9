package transform

import (
	"fmt"
	"strings"

	"github.com/healthai/etl/internal/etl/frame"
)

// ValidationError reports the required output columns a transform failed to
// produce. The orchestrator skips the source's load and moves on.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ValidateRequired checks that every required column is present in the frame.
func ValidateRequired(f *frame.Frame, required []string) error {
	var missing []string
	for _, col := range required {
		if !f.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
