package models

import "time"

// Card is the board-facing placement projection of a note: which column it
// sits in and where, plus the display fields the board renders. The note's
// full content lives outside the board core and is treated as opaque payload.
type Card struct {
	ID        string
	Title     string
	Body      string // Markdown note body, rendered in the detail overlay
	Tags      []string
	Priority  int
	TasksDone int
	TasksTot  int
	DueDate   *time.Time

	// Placement. ColumnID is empty when the card is not shown on the board.
	// Position is a dense zero-based rank within the column and has no
	// meaning across columns.
	ColumnID string
	Position int
}

// OnBoard reports whether the card currently has a board placement.
func (c *Card) OnBoard() bool {
	return c.ColumnID != ""
}
