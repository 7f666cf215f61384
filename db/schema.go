// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var ErrUnsupportedDatabase = errors.New("unsupported database type")

// Open returns a handle for dbType ("sqlite" or "postgres"). It does not
// contact the database; use Ping for that.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case "sqlite":
		driver = "sqlite"
	case "postgres":
		driver = "postgres"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDatabase, dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbType, err)
	}
	if dbType == "sqlite" {
		// One writer at a time; avoids SQLITE_BUSY between save and load.
		conn.SetMaxOpenConns(1)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Survey entries, idx is the 0-based position in the survey
CREATE TABLE IF NOT EXISTS survey_entry (
    idx INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    votes BIGINT NOT NULL DEFAULT 0
);
`
