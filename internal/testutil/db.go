package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "modernc.org/sqlite"
)

// TestUser is the user id all test fixtures are scoped to.
const TestUser = "tester"

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// A second pooled connection would see its own empty memory database.
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// createTestSchema creates the complete database schema for testing
func createTestSchema(db *sql.DB) error {
	schema := `
	-- Columns table
	CREATE TABLE IF NOT EXISTS columns (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		position INTEGER NOT NULL,
		is_default BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Unique partial index: only one default column per user
	CREATE UNIQUE INDEX IF NOT EXISTS idx_columns_default_per_user
	ON columns(user_id) WHERE is_default = 1;

	CREATE INDEX IF NOT EXISTS idx_columns_user ON columns(user_id, position);

	-- Notes table (cards are the board-facing projection of notes)
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

	_, err := db.ExecContext(context.Background(), schema)
	return err
}

// CreateTestColumn creates a test column and returns its ID
func CreateTestColumn(t *testing.T, db *sql.DB, userID, name string, position int, isDefault bool) string {
	t.Helper()
	id := fmt.Sprintf("col-%s-%d", name, position)
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO columns (id, user_id, name, position, is_default) VALUES (?, ?, ?, ?, ?)",
		id, userID, name, position, isDefault)
	if err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return id
}

// CreateTestCard creates a board-visible test note and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, userID, columnID, title string, position int) string {
	t.Helper()
	id := fmt.Sprintf("card-%s-%d", title, position)
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO notes (id, user_id, title, body, on_board, column_id, position)
		 VALUES (?, ?, ?, '', 1, ?, ?)`,
		id, userID, title, columnID, position)
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	return id
}

// CreateTestNote creates a note that is not shown on the board
func CreateTestNote(t *testing.T, db *sql.DB, userID, title string) string {
	t.Helper()
	id := "note-" + title
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO notes (id, user_id, title) VALUES (?, ?, ?)",
		id, userID, title)
	if err != nil {
		t.Fatalf("Failed to create test note: %v", err)
	}
	return id
}
