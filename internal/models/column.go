package models

// Column represents a kanban board column (e.g., "Inbox", "Follow Up", "Done").
// Columns are ordered by Position, a dense zero-based rank among the owning
// user's columns. Exactly one column per user is the default; cards from a
// deleted column are migrated to it.
type Column struct {
	ID        string // Storage-assigned opaque identifier
	UserID    string // Owner of the column
	Name      string // Display name of the column
	Position  int    // Dense rank among the user's columns, 0-based
	IsDefault bool   // Safety-net column; cannot be deleted
}
