package report

import "tracker-golang/internal/constants"

// Row is a work log record reduced to the canonical report fields. Keys are
// always a subset of constants.ReportFields; a missing key renders as empty.
type Row map[string]string

// Value returns the field value, or "" when the source row never carried it.
func (r Row) Value(field string) string {
	return r[field]
}

// Project filters raw records down to the canonical fields. Field order is
// dictated by constants.ReportFields, not by the source. Rows are never
// dropped: a record with no canonical fields at all becomes an empty Row.
func Project(raw []map[string]string) []Row {
	rows := make([]Row, 0, len(raw))
	for _, rec := range raw {
		row := Row{}
		for _, field := range constants.ReportFields {
			if val, ok := rec[field]; ok {
				row[field] = val
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ProjectColumns reduces a source header to the canonical fields it contains,
// in canonical order. This is the column set the data rows render with.
func ProjectColumns(columns []string) []string {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}
	var out []string
	for _, field := range constants.ReportFields {
		if present[field] {
			out = append(out, field)
		}
	}
	return out
}
