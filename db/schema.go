// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to PostgreSQL or SQLite and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case "postgres":
		driver = "postgres"
	case "sqlite":
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if driver == "sqlite" {
		// PRAGMA foreign_keys is per connection
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		if _, err := conn.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
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

// Timestamps are RFC 3339 text as delivered by the organizer tools;
// unparseable values read back as absent. Prices are minor units.
const schema = `
-- Awards
CREATE TABLE IF NOT EXISTS award (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    ceremony_date TEXT,
    voting_start TEXT,
    voting_end TEXT,
    status TEXT NOT NULL DEFAULT '',
    show_results BOOLEAN NOT NULL DEFAULT FALSE,
    total_votes BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_award_slug ON award(slug);

-- Categories
CREATE TABLE IF NOT EXISTS category (
    id TEXT PRIMARY KEY,
    award_id TEXT NOT NULL REFERENCES award(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    cost_per_vote BIGINT NOT NULL DEFAULT 0 CHECK (cost_per_vote >= 0),
    position INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_category_award_id ON category(award_id);

-- Nominees
CREATE TABLE IF NOT EXISTS nominee (
    id TEXT PRIMARY KEY,
    category_id TEXT NOT NULL REFERENCES category(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    nominee_code TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT '',
    vote_count BIGINT NOT NULL DEFAULT 0,
    position INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_nominee_category_id ON nominee(category_id);
`
