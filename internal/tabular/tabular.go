// Package tabular adapts CSV source data into the raw nested records the
// validation engine consumes. It performs column renaming only; all
// validation stays with the model package, so a bad cell surfaces as a
// schema violation, never as a silently coerced value.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadRecords reads a CSV file with a header row and returns one raw record
// per data row, with every cell kept as a string. rename maps source column
// names to record field names; columns absent from the map keep their header
// name unchanged.
func ReadRecords(path string, rename map[string]string) ([]map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open source file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("source file %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header of %s: %w", path, err)
	}

	fields := make([]string, len(header))
	for i, col := range header {
		if mapped, ok := rename[col]; ok {
			fields[i] = mapped
		} else {
			fields[i] = col
		}
	}

	var records []map[string]any
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read row %d of %s: %w", len(records)+2, path, err)
		}
		rec := make(map[string]any, len(fields))
		for i, cell := range row {
			rec[fields[i]] = cell
		}
		records = append(records, rec)
	}

	return records, nil
}
