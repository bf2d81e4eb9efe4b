package mysql

import (
	"context"
	"fmt"

	"tracker-golang/internal/storage"
)

func (s *Storage) SaveExport(ctx context.Context, rec storage.ExportRecord) error {
	const op = "storage.mysql.SaveExport"

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO export_history (id, format, file_name, exported_at)
        VALUES (?, ?, ?, ?)
    `, rec.ID, rec.Format, rec.FileName, rec.ExportedAt)
	if err != nil {
		return fmt.Errorf("%s: insert %s export: %w", op, rec.Format, err)
	}

	return nil
}

func (s *Storage) ExportHistory(ctx context.Context) ([]storage.ExportRecord, error) {
	const op = "storage.mysql.ExportHistory"

	rows, err := s.db.QueryContext(ctx, `
        SELECT id, format, file_name, exported_at
        FROM export_history
        ORDER BY exported_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var records []storage.ExportRecord
	for rows.Next() {
		var rec storage.ExportRecord
		if err := rows.Scan(&rec.ID, &rec.Format, &rec.FileName, &rec.ExportedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (s *Storage) DeleteExportHistory(ctx context.Context) error {
	const op = "storage.mysql.DeleteExportHistory"

	if _, err := s.db.ExecContext(ctx, `DELETE FROM export_history`); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
