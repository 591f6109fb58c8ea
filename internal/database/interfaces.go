package database

import (
	"context"

	"tablero/internal/models"
)

// ColumnRepository is the storage contract for board columns. The board core
// treats the implementation as an external collaborator: it only asks for
// current state and hands over new arrangements.
type ColumnRepository interface {
	// GetColumnsByUser returns all of the user's columns ordered by position.
	GetColumnsByUser(ctx context.Context, userID string) ([]*models.Column, error)

	// CreateColumn persists a new non-default column. The id is assigned by
	// the repository.
	CreateColumn(ctx context.Context, userID, name string, position int) (*models.Column, error)

	// RenameColumn updates a column's display name.
	RenameColumn(ctx context.Context, id, name string) error

	// DeleteColumn removes a column. Within the same transaction, any card
	// still placed in it is migrated to the user's default column, appended
	// after the default column's existing cards with dense positions, so no
	// card ever references a nonexistent column. The surviving columns are
	// rewritten to dense 0..n-1 positions.
	DeleteColumn(ctx context.Context, id string) error

	// UpsertColumnOrder rewrites name, position, and default flag for the
	// given columns in one transaction. Callers must pass the user's full
	// column set; a partial batch would break the dense-rank invariant.
	UpsertColumnOrder(ctx context.Context, columns []*models.Column) error
}

// CardRepository is the storage contract for board card placements.
type CardRepository interface {
	// GetBoardCards returns the user's board-visible cards ordered by
	// position.
	GetBoardCards(ctx context.Context, userID string) ([]*models.Card, error)

	// GetBacklogNotes returns the user's off-board notes, the candidates for
	// adding to the board.
	GetBacklogNotes(ctx context.Context, userID string) ([]*models.Card, error)

	// UpdateCardPlacement writes one card's column and position. This is a
	// single independent write: batch callers issue one call per card and
	// own the partial-failure handling.
	UpdateCardPlacement(ctx context.Context, id, columnID string, position int) error

	// SetBoardMembership toggles whether a card appears on the board. When
	// enabling, the card is placed at position 0 of the given column and the
	// column's existing cards shift down. When disabling, the placement is
	// cleared.
	SetBoardMembership(ctx context.Context, id string, show bool, columnID string) (*models.Card, error)
}
