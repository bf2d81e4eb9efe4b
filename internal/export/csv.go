package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"tracker-golang/internal/report"
)

// CSV writes the projected source rows as plain tabular data: the canonical
// columns present in the source as the header, one line per record. No period
// segmentation, no report structure, just the dataset itself.
func CSV(columns []string, rows []report.Row) ([]byte, error) {
	const op = "export.CSV"

	var buf bytes.Buffer
	if len(columns) == 0 {
		return buf.Bytes(), nil
	}

	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("%s: header: %w", op, err)
	}

	record := make([]string, len(columns))
	for i, row := range rows {
		for j, field := range columns {
			record[j] = row.Value(field)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", op, i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}
