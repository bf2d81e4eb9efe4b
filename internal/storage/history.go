package storage

import "time"

type ImportRecord struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	RowCount   int       `json:"row_count"`
	ImportedAt time.Time `json:"imported_at"`
}

type ExportRecord struct {
	ID         string    `json:"id"`
	Format     string    `json:"format"`
	FileName   string    `json:"file_name"`
	ExportedAt time.Time `json:"exported_at"`
}
