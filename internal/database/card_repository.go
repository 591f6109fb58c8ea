package database

import (
	"context"
	"database/sql"
	"fmt"

	"tablero/internal/models"
)

// SQLCardRepository implements CardRepository over SQLite. It reads and
// writes the placement projection of notes; note content itself is only ever
// carried along as display payload.
type SQLCardRepository struct {
	db *sql.DB
}

var _ CardRepository = (*SQLCardRepository)(nil)

func NewCardRepository(db *sql.DB) *SQLCardRepository {
	return &SQLCardRepository{db: db}
}

const cardColumns = `id, title, body, tags, priority, due_date, tasks_done, tasks_total, column_id, position`

func scanCard(row interface{ Scan(...any) error }) (*models.Card, error) {
	card := &models.Card{}
	var tags string
	var dueDate sql.NullTime
	var columnID sql.NullString
	err := row.Scan(
		&card.ID, &card.Title, &card.Body, &tags, &card.Priority,
		&dueDate, &card.TasksDone, &card.TasksTot, &columnID, &card.Position,
	)
	if err != nil {
		return nil, err
	}
	card.Tags = splitTags(tags)
	card.DueDate = nullTimeToPtr(dueDate)
	card.ColumnID = nullStringToString(columnID)
	return card, nil
}

// GetBoardCards retrieves the user's board-visible cards ordered by position.
// Ties are resolved later by the grouping step, not here.
func (r *SQLCardRepository) GetBoardCards(ctx context.Context, userID string) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cardColumns+`
		 FROM notes
		 WHERE user_id = ? AND on_board = 1
		 ORDER BY position`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

// GetBacklogNotes retrieves the user's notes that are not on the board,
// newest first. These are the candidates for a board-membership enable.
func (r *SQLCardRepository) GetBacklogNotes(ctx context.Context, userID string) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cardColumns+`
		 FROM notes
		 WHERE user_id = ? AND on_board = 0
		 ORDER BY updated_at DESC, title`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

// UpdateCardPlacement writes one card's column and position. Deliberately
// not transactional across cards: each placement write stands alone.
func (r *SQLCardRepository) UpdateCardPlacement(ctx context.Context, id, columnID string, position int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notes
		 SET column_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		columnID, position, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update placement for card %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// SetBoardMembership toggles a card on or off the board. Enabling places the
// card at position 0 of the given column, shifting that column's cards down
// so the user sees the fresh card without scrolling. Disabling clears the
// placement back to its neutral value.
func (r *SQLCardRepository) SetBoardMembership(ctx context.Context, id string, show bool, columnID string) (*models.Card, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if show {
			_, err := tx.ExecContext(ctx,
				"UPDATE notes SET position = position + 1 WHERE column_id = ? AND on_board = 1",
				columnID,
			)
			if err != nil {
				return err
			}
			result, err := tx.ExecContext(ctx,
				`UPDATE notes
				 SET on_board = 1, column_id = ?, position = 0, updated_at = CURRENT_TIMESTAMP
				 WHERE id = ?`,
				columnID, id,
			)
			if err != nil {
				return err
			}
			return requireRow(result)
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE notes
			 SET on_board = 0, column_id = NULL, position = 0, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			id,
		)
		if err != nil {
			return err
		}
		return requireRow(result)
	})
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM notes WHERE id = ?`, id)
	card, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCardNotFound
	}
	return nil
}
