// Package extract reads raw tabular data from local CSV files or the public
// exercise catalog and materializes it into a frame.Frame.
package extract

import "fmt"

// Error wraps any network or parse failure at the extraction boundary. The
// orchestrator matches on it with errors.As to abort only the failing stage.
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extraction failed for %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
