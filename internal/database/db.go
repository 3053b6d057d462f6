// Package database provides database connection management.
package database

import (
	"fmt"
	"net/url"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lexicon-tools/logeion/internal/config"
)

// Open opens a read-only SQLite connection to the dictionary file.
// The dictionary is never written to, so immutable mode lets SQLite skip
// locking and allows concurrent readers across processes.
func Open(cfg config.DictionaryConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?%s", cfg.Path, url.Values{
		"mode":          {"ro"},
		"immutable":     {"1"},
		"_busy_timeout": {"5000"},
	}.Encode())

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	// Fail at startup rather than on the first request if the file is
	// missing or not a SQLite database.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Ping() > %w", err)
	}

	return db, nil
}
