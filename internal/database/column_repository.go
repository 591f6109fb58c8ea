package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"tablero/internal/models"
)

// SQLColumnRepository implements ColumnRepository over SQLite.
type SQLColumnRepository struct {
	db *sql.DB
}

// Compile-time verification of the contract
var _ ColumnRepository = (*SQLColumnRepository)(nil)

func NewColumnRepository(db *sql.DB) *SQLColumnRepository {
	return &SQLColumnRepository{db: db}
}

// GetColumnsByUser retrieves all columns for a user, ordered by position
func (r *SQLColumnRepository) GetColumnsByUser(ctx context.Context, userID string) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, position, is_default
		 FROM columns
		 WHERE user_id = ?
		 ORDER BY position`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []*models.Column
	for rows.Next() {
		col := &models.Column{}
		if err := rows.Scan(&col.ID, &col.UserID, &col.Name, &col.Position, &col.IsDefault); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return columns, nil
}

// CreateColumn persists a new non-default column with a fresh id
func (r *SQLColumnRepository) CreateColumn(ctx context.Context, userID, name string, position int) (*models.Column, error) {
	col := &models.Column{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		Position: position,
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO columns (id, user_id, name, position, is_default)
		 VALUES (?, ?, ?, ?, 0)`,
		col.ID, col.UserID, col.Name, col.Position,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}

	return col, nil
}

// RenameColumn updates a column's name
func (r *SQLColumnRepository) RenameColumn(ctx context.Context, id, name string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE columns SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return fmt.Errorf("failed to rename column: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrColumnNotFound
	}
	return nil
}

// DeleteColumn removes a column after migrating its cards to the user's
// default column within the same transaction. Migrated cards are appended
// behind the default column's existing cards, keeping positions dense and
// preserving their relative order. The surviving columns are reindexed to
// dense positions in the same transaction.
func (r *SQLColumnRepository) DeleteColumn(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var userID string
		var isDefault bool
		err := tx.QueryRowContext(ctx,
			"SELECT user_id, is_default FROM columns WHERE id = ?", id,
		).Scan(&userID, &isDefault)
		if err == sql.ErrNoRows {
			return ErrColumnNotFound
		}
		if err != nil {
			return err
		}
		if isDefault {
			return ErrDefaultColumn
		}

		var defaultID string
		err = tx.QueryRowContext(ctx,
			"SELECT id FROM columns WHERE user_id = ? AND is_default = 1", userID,
		).Scan(&defaultID)
		if err == sql.ErrNoRows {
			return ErrNoDefaultColumn
		}
		if err != nil {
			return err
		}

		// Append the doomed column's cards behind the default column's.
		var base int
		err = tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(position), -1) FROM notes WHERE column_id = ? AND on_board = 1",
			defaultID,
		).Scan(&base)
		if err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx,
			"SELECT id FROM notes WHERE column_id = ? AND on_board = 1 ORDER BY position", id)
		if err != nil {
			return err
		}
		var orphanIDs []string
		for rows.Next() {
			var noteID string
			if err := rows.Scan(&noteID); err != nil {
				rows.Close()
				return err
			}
			orphanIDs = append(orphanIDs, noteID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for i, noteID := range orphanIDs {
			_, err := tx.ExecContext(ctx,
				`UPDATE notes
				 SET column_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP
				 WHERE id = ?`,
				defaultID, base+1+i, noteID,
			)
			if err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM columns WHERE id = ?", id); err != nil {
			return err
		}

		// Close the gap: survivors get dense ranks, so max(position)+1 for
		// the next create cannot collide with a stale position.
		survivors, err := tx.QueryContext(ctx,
			"SELECT id FROM columns WHERE user_id = ? ORDER BY position", userID)
		if err != nil {
			return err
		}
		var survivorIDs []string
		for survivors.Next() {
			var colID string
			if err := survivors.Scan(&colID); err != nil {
				survivors.Close()
				return err
			}
			survivorIDs = append(survivorIDs, colID)
		}
		survivors.Close()
		if err := survivors.Err(); err != nil {
			return err
		}

		for i, colID := range survivorIDs {
			_, err := tx.ExecContext(ctx,
				"UPDATE columns SET position = ? WHERE id = ?", i, colID)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// UpsertColumnOrder rewrites the given columns in a single transaction.
func (r *SQLColumnRepository) UpsertColumnOrder(ctx context.Context, columns []*models.Column) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, col := range columns {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO columns (id, user_id, name, position, is_default)
				 VALUES (?, ?, ?, ?, ?)
				 ON CONFLICT(id) DO UPDATE SET
					name = excluded.name,
					position = excluded.position,
					is_default = excluded.is_default`,
				col.ID, col.UserID, col.Name, col.Position, col.IsDefault,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert column %s: %w", col.ID, err)
			}
		}
		return nil
	})
}
