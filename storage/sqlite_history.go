package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteHistory struct {
	db *sql.DB
}

type SQLiteHistoryOptions struct {
	DBPath string
}

func NewSQLiteHistory(opts SQLiteHistoryOptions) (History, error) {
	if opts.DBPath == "" {
		opts.DBPath = "./data/history.db"
	}

	dbDir := filepath.Dir(opts.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", opts.DBPath+"?_journal_mode=WAL&_busy_timeout=10000&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	h := &SQLiteHistory{db: db}

	if err := h.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	return h, nil
}

func (h *SQLiteHistory) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		key TEXT NOT NULL,
		body TEXT NOT NULL,
		added_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_key_id ON messages(key, id);
	`

	_, err := h.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

func (h *SQLiteHistory) Append(key, msg string) error {
	_, err := h.db.ExecContext(context.Background(),
		`INSERT INTO messages (key, body, added_at) VALUES (?, ?, ?)`,
		key, msg, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}

func (h *SQLiteHistory) Messages(key string) ([]string, error) {
	rows, err := h.db.QueryContext(context.Background(),
		`SELECT body FROM messages WHERE key = ? ORDER BY id ASC`,
		key,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	msgs := []string{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msgs = append(msgs, body)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}

	if len(msgs) == 0 {
		return nil, keyNotFound(key)
	}

	return msgs, nil
}

func (h *SQLiteHistory) Has(key string) bool {
	var exists bool
	err := h.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM messages WHERE key = ?)",
		key,
	).Scan(&exists)
	return err == nil && exists
}

func (h *SQLiteHistory) Keys() ([]string, error) {
	rows, err := h.db.Query("SELECT DISTINCT key FROM messages ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to query keys: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}
