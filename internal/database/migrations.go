package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// runMigrations creates the database schema and seeds default data if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS columns (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		position INTEGER NOT NULL,
		is_default BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Exactly one default column per user
	CREATE UNIQUE INDEX IF NOT EXISTS idx_columns_default_per_user
	ON columns(user_id) WHERE is_default = 1;

	CREATE INDEX IF NOT EXISTS idx_columns_user ON columns(user_id, position);

	CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		body TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		priority INTEGER NOT NULL DEFAULT 3,
		due_date TIMESTAMP,
		tasks_done INTEGER NOT NULL DEFAULT 0,
		tasks_total INTEGER NOT NULL DEFAULT 0,
		on_board BOOLEAN NOT NULL DEFAULT 0,
		column_id TEXT REFERENCES columns(id),
		position INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_notes_board
	ON notes(user_id, on_board, column_id, position);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}

	return nil
}

// SeedDefaultColumns inserts starter columns for a user that has none. The
// first one is the default column that catches cards from deleted columns.
func SeedDefaultColumns(ctx context.Context, db *sql.DB, userID string) error {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM columns WHERE user_id = ?", userID).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaultColumns := []struct {
		name      string
		isDefault bool
	}{
		{"Inbox", true},
		{"Follow Up", false},
		{"Done", false},
	}

	for i, col := range defaultColumns {
		_, err := db.ExecContext(ctx,
			"INSERT INTO columns (id, user_id, name, position, is_default) VALUES (?, ?, ?, ?, ?)",
			uuid.NewString(), userID, col.name, i, col.isDefault,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
