package tokenstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	envHome    = "MALL_STATE_HOME" // override for tests
	dirName    = ".points-mall"    // default under $HOME
	dbFilename = "state.db"
)

// DefaultPath returns the database path under ~/.points-mall, creating the
// directory with 0700 permissions if needed.
func DefaultPath() (string, error) {
	dir := os.Getenv(envHome)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine user home: %w", err)
		}
		dir = filepath.Join(home, dirName)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFilename), nil
}

// SQLite is a Store persisted in a SQLite file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the store at path with WAL journaling.
func OpenSQLite(path string) (*SQLite, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS KeyValues (
            Key TEXT PRIMARY KEY,
            Value TEXT NOT NULL,
            UpdateTime TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        );`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO KeyValues (Key, Value, UpdateTime) VALUES (?, ?, CURRENT_TIMESTAMP)
         ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value, UpdateTime = excluded.UpdateTime`,
		key, string(b))
	return err
}

func (s *SQLite) Get(ctx context.Context, key string, out any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT Value FROM KeyValues WHERE Key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(raw), out)
}

func (s *SQLite) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM KeyValues WHERE Key = ?`, key)
	return err
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }
