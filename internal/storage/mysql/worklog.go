package mysql

import (
	"context"
	"encoding/json"
	"fmt"

	"tracker-golang/internal/storage"
)

// SaveImport stores one imported dataset and its history entry in a single
// transaction. Columns and row payloads are stored as JSON, the engine treats
// rows as opaque field maps anyway.
func (s *Storage) SaveImport(ctx context.Context, rec storage.ImportRecord, columns []string, rows []map[string]string) error {
	const op = "storage.mysql.SaveImport"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	columnsJSON, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("%s: marshal columns: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `
        INSERT INTO import_history (id, file_name, row_count, columns_json, imported_at)
        VALUES (?, ?, ?, ?, ?)
    `, rec.ID, rec.FileName, rec.RowCount, string(columnsJSON), rec.ImportedAt)
	if err != nil {
		return fmt.Errorf("%s: insert history for %s: %w", op, rec.FileName, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO work_log_rows (import_id, row_index, payload)
        VALUES (?, ?, ?)
    `)
	if err != nil {
		return fmt.Errorf("%s: prepare rows insert: %w", op, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		payload, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("%s: marshal row %d: %w", op, i, err)
		}
		if _, err := stmt.ExecContext(ctx, rec.ID, i, string(payload)); err != nil {
			return fmt.Errorf("%s: insert row %d: %w", op, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

// LoadImport restores a previously imported dataset by id.
func (s *Storage) LoadImport(ctx context.Context, id string) ([]string, []map[string]string, error) {
	const op = "storage.mysql.LoadImport"

	var columnsJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT columns_json FROM import_history WHERE id = ?`, id,
	).Scan(&columnsJSON)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: import %s: %w", op, id, err)
	}

	var columns []string
	if err := json.Unmarshal([]byte(columnsJSON), &columns); err != nil {
		return nil, nil, fmt.Errorf("%s: unmarshal columns for %s: %w", op, id, err)
	}

	rowsRes, err := s.db.QueryContext(ctx, `
        SELECT payload FROM work_log_rows
        WHERE import_id = ?
        ORDER BY row_index ASC
    `, id)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: query rows for %s: %w", op, id, err)
	}
	defer rowsRes.Close()

	var rows []map[string]string
	for rowsRes.Next() {
		var payload string
		if err := rowsRes.Scan(&payload); err != nil {
			return nil, nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		row := map[string]string{}
		if err := json.Unmarshal([]byte(payload), &row); err != nil {
			return nil, nil, fmt.Errorf("%s: unmarshal row: %w", op, err)
		}
		rows = append(rows, row)
	}

	return columns, rows, rowsRes.Err()
}

func (s *Storage) ImportHistory(ctx context.Context) ([]storage.ImportRecord, error) {
	const op = "storage.mysql.ImportHistory"

	rows, err := s.db.QueryContext(ctx, `
        SELECT id, file_name, row_count, imported_at
        FROM import_history
        ORDER BY imported_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var records []storage.ImportRecord
	for rows.Next() {
		var rec storage.ImportRecord
		if err := rows.Scan(&rec.ID, &rec.FileName, &rec.RowCount, &rec.ImportedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteImportHistory wipes all imported datasets and their history entries.
func (s *Storage) DeleteImportHistory(ctx context.Context) error {
	const op = "storage.mysql.DeleteImportHistory"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM work_log_rows`); err != nil {
		return fmt.Errorf("%s: delete rows: %w", op, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM import_history`); err != nil {
		return fmt.Errorf("%s: delete history: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
