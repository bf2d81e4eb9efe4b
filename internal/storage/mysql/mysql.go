package mysql

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"tracker-golang/internal/config"
)

// Storage persists imported work log datasets and the import/export history.
//
// Tables:
//
//	import_history(id CHAR(36) PK, file_name, row_count, columns_json TEXT, imported_at DATETIME)
//	work_log_rows(import_id CHAR(36), row_index INT, payload TEXT, PRIMARY KEY(import_id, row_index))
//	export_history(id CHAR(36) PK, format, file_name, exported_at DATETIME)
type Storage struct {
	db *sql.DB
}

func New(cfg config.Config) (*Storage, error) {
	const op = "storage.mysql.New"

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=%v",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.ParseTime,
	)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
