package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema if it is not already present.
func (db *DB) RunMigrations() error {
	migration := `
-- Projects in collection order
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    project_name TEXT NOT NULL,
    keywords TEXT NOT NULL DEFAULT '',
    extended_terms TEXT NOT NULL DEFAULT '',
    project_content TEXT NOT NULL DEFAULT '',
    contract_signing_date TEXT NOT NULL DEFAULT '',
    project_end_date TEXT NOT NULL DEFAULT '',
    contract_amount REAL NOT NULL DEFAULT 0,
    construction_unit TEXT NOT NULL DEFAULT '',
    contact_person TEXT NOT NULL DEFAULT '',
    contact_phone TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_projects_position ON projects(position);

-- Talents in collection order; ids are not required to be unique
CREATE TABLE IF NOT EXISTS talents (
    position INTEGER PRIMARY KEY,
    id TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    expertise TEXT NOT NULL DEFAULT '',
    contact_phone TEXT NOT NULL DEFAULT '',
    social_security_status TEXT NOT NULL CHECK(social_security_status IN ('Updated', 'Pending')),
    last_update_date TEXT NOT NULL DEFAULT '',
    related_projects TEXT NOT NULL DEFAULT '[]'
);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
