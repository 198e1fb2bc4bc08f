package state

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // driver puro Go, sin cgo
)

// SQLite implementación durable del Store sobre un archivo sqlite con una
// sola tabla clave/valor.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite abre (y crea si no existe) el archivo de estado.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = "ops-console.db"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("state: abrir %s: %w", path, err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS client_state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("state: crear esquema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM client_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("state: leer %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO client_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("state: guardar %s: %w", key, err)
	}
	return nil
}

func (s *SQLite) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM client_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("state: borrar %s: %w", key, err)
	}
	return nil
}

func (s *SQLite) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM client_state`); err != nil {
		return fmt.Errorf("state: limpiar: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }
