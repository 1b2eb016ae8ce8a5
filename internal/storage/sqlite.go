package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var schema = `
	CREATE TABLE IF NOT EXISTS kv (
		name TEXT PRIMARY KEY NOT NULL,
		data BLOB NOT NULL,
		updated_at DATETIME NOT NULL
	);
`

// SQLiteSlot stores values in a single kv table.
type SQLiteSlot struct {
	db *sqlx.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteSlot, error) {
	if path == "" {
		return nil, errors.New("storage: sqlite path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}

	v := url.Values{}
	v.Add("_fk", "on")
	v.Add("_journal_mode", "WAL")
	dsn := fmt.Sprintf("file:%s?%s", path, v.Encode())

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: connecting to %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: creating schema: %w", err)
	}
	return &SQLiteSlot{db: db}, nil
}

type kvRow struct {
	Name      string    `db:"name"`
	Data      []byte    `db:"data"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s *SQLiteSlot) Read(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var row kvRow
	err := s.db.Get(&row, "SELECT name, data, updated_at FROM kv WHERE name = ?", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.Data, nil
}

func (s *SQLiteSlot) Write(key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	row := kvRow{Name: key, Data: data, UpdatedAt: time.Now().UTC()}
	_, err := s.db.NamedExec(`
		INSERT INTO kv (name, data, updated_at) VALUES (:name, :data, :updated_at)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		row)
	return err
}

func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
