package db

import (
	"database/sql"
	"time"

	"github.com/thantzin/linklet/internal/errors"
)

// GetState retrieves the value stored under key.
// A missing key returns ("", false, nil); consumers treat that as empty state.
func GetState(db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewInternal(err)
	}
	return value, true, nil
}

// SetState writes value under key, replacing any previous value.
func SetState(db *sql.DB, key, value string) error {
	query := `
		INSERT INTO state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := db.Exec(query, key, value, time.Now().Unix()); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// DeleteState removes the value stored under key. Missing keys are a no-op.
func DeleteState(db *sql.DB, key string) error {
	if _, err := db.Exec("DELETE FROM state WHERE key = ?", key); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}
