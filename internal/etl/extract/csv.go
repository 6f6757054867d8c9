package extract

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/logger"
)

// CSV reads a whole CSV file into a frame. The header row becomes the column
// set; every cell is kept as a string (numeric coercion belongs to the
// transformers). A positive limit truncates after full materialization.
func CSV(path string, limit int, log *logger.Logger) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &Error{Source: path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &Error{Source: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &Error{Source: path, Err: fmt.Errorf("file has no header row")}
	}

	header := records[0]
	f := frame.New(header...)
	for _, record := range records[1:] {
		row := frame.Row{}
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		f.Append(row)
	}
	f.Head(limit)

	log.Info("Extracted rows from CSV", "path", path, "rows", f.Len())
	return f, nil
}
