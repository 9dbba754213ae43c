package storage

import (
	"database/sql"
	"fmt"
)

// TimeFormat is the canonical timestamp layout stored in TEXT columns.
const TimeFormat = "2006-01-02T15:04:05.999999999Z07:00"

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS admin (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		fullname TEXT NOT NULL,
		role TEXT NOT NULL,
		starting_date TEXT NOT NULL,
		end_date TEXT,
		verified INTEGER NOT NULL DEFAULT 0,
		verification_token TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS service (
		id TEXT PRIMARY KEY,
		image TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		unit TEXT NOT NULL,
		price REAL NOT NULL,
		availability TEXT NOT NULL,
		added_date TEXT NOT NULL,
		deleted INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS customer_transaction (
		id TEXT PRIMARY KEY,
		contact_person TEXT NOT NULL,
		contact_number TEXT NOT NULL,
		email TEXT NOT NULL,
		services TEXT NOT NULL,
		starting_date TEXT NOT NULL,
		due_date TEXT NOT NULL,
		location TEXT NOT NULL,
		status TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS session (
		token TEXT PRIMARY KEY,
		admin_id TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_admin_token ON admin(verification_token);
	CREATE INDEX IF NOT EXISTS idx_service_unit ON service(unit);
	CREATE INDEX IF NOT EXISTS idx_session_created ON session(created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
