package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"jadwal/internal/model"
)

const uploadLogSchema = `
CREATE TABLE IF NOT EXISTS upload_log (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	filename   TEXT NOT NULL,
	dept_type  TEXT NOT NULL,
	records    INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// UploadLogEntry one successful ingest, as recorded in the history.
type UploadLogEntry struct {
	ID        int64          `json:"id"`
	Filename  string         `json:"filename"`
	DeptType  model.DeptType `json:"deptType"`
	Records   int            `json:"records"`
	CreatedAt time.Time      `json:"createdAt"`
}

// UploadLog append-only upload history in SQLite under the data dir.
// History only; the schedule data itself lives in the JSON store.
type UploadLog struct {
	db *sql.DB
}

// OpenUploadLog opens (and if needed creates) uploads.db under dataDir.
func OpenUploadLog(dataDir string) (*UploadLog, error) {
	if err := ensureDir(dataDir); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dataDir, "uploads.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open upload log: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping upload log: %w", err)
	}

	// SQLite works best with a single writer connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(uploadLogSchema); err != nil {
		return nil, fmt.Errorf("failed to initialize upload log schema: %w", err)
	}
	return &UploadLog{db: db}, nil
}

// Append records one successful ingest.
func (l *UploadLog) Append(filename string, dept model.DeptType, records int) error {
	_, err := l.db.Exec(
		"INSERT INTO upload_log (filename, dept_type, records) VALUES (?, ?, ?)",
		filename, string(dept), records,
	)
	return err
}

// Recent the n most recent entries, newest first.
func (l *UploadLog) Recent(n int) ([]UploadLogEntry, error) {
	rows, err := l.db.Query(
		"SELECT id, filename, dept_type, records, created_at FROM upload_log ORDER BY id DESC LIMIT ?",
		n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []UploadLogEntry
	for rows.Next() {
		var e UploadLogEntry
		var dept string
		if err := rows.Scan(&e.ID, &e.Filename, &dept, &e.Records, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.DeptType = model.DeptType(dept)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear empties the history. Runs as part of a full reset.
func (l *UploadLog) Clear() error {
	_, err := l.db.Exec("DELETE FROM upload_log")
	return err
}

// Close closes the underlying database.
func (l *UploadLog) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}
