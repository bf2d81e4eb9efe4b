package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Dataset is a parsed work log file: the source header and one field map per
// record. Nothing is canonicalized here, projection happens in the report
// engine.
type Dataset struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// LoadFile reads a work log file from disk, picking the parser from the file
// extension.
func LoadFile(path string) (*Dataset, error) {
	const op = "ingest.LoadFile"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	return Load(f, filepath.Base(path))
}

// Load parses a work log stream. Supported formats: tab separated text
// (.txt/.tsv), comma separated (.csv) and spreadsheets (.xlsx). Anything
// unrecognized is treated as CSV.
func Load(r io.Reader, filename string) (*Dataset, error) {
	const op = "ingest.Load"

	var (
		ds  *Dataset
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		ds, err = loadSpreadsheet(r)
	case ".txt", ".tsv":
		ds, err = loadDelimited(r, '\t')
	default:
		ds, err = loadDelimited(r, ',')
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, filename, err)
	}
	return ds, nil
}

func loadDelimited(r io.Reader, comma rune) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRecords(records), nil
}

func loadSpreadsheet(r io.Reader) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Dataset{}, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return fromRecords(records), nil
}

func fromRecords(records [][]string) *Dataset {
	if len(records) == 0 {
		return &Dataset{}
	}

	columns := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return &Dataset{Columns: columns, Rows: rows}
}
