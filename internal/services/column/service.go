// Package column owns the user's column list: fetching it, validating
// mutations, and keeping an optimistic in-memory copy that the board renders
// from. Writes go through the storage collaborator; when a write fails after
// an optimistic update, the cache is discarded and re-fetched rather than
// patched, because the authoritative store always wins.
package column

import (
	"context"
	"log/slog"
	"sync"

	"tablero/internal/board"
	"tablero/internal/database"
	"tablero/internal/models"
)

// Service manages the current user's columns.
type Service struct {
	repo   database.ColumnRepository
	userID string

	mu      sync.Mutex
	columns []*models.Column
}

// NewService creates a column service for one user. Call Load before reading
// Columns.
func NewService(repo database.ColumnRepository, userID string) *Service {
	return &Service{repo: repo, userID: userID}
}

// Load fetches the authoritative column list and replaces the cache. On
// failure the previous cache is kept so the caller can keep showing the last
// good state.
func (s *Service) Load(ctx context.Context) ([]*models.Column, error) {
	columns, err := s.repo.GetColumnsByUser(ctx, s.userID)
	if err != nil {
		return nil, &models.FetchError{Op: "columns", Err: err}
	}

	s.mu.Lock()
	s.columns = columns
	s.mu.Unlock()

	return s.Columns(), nil
}

// Columns returns a snapshot of the cached column list.
func (s *Service) Columns() []*models.Column {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Default returns the cached default column, or nil if none is known.
func (s *Service) Default() *models.Column {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, col := range s.columns {
		if col.IsDefault {
			return col
		}
	}
	return nil
}

// Create validates and persists a new column appended at max(position)+1.
// There is no optimistic insert: the id is storage-assigned, so the cache is
// only updated once the write succeeds.
func (s *Service) Create(ctx context.Context, name string) (*models.Column, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > 50 {
		return nil, ErrNameTooLong
	}

	s.mu.Lock()
	next := 0
	for _, col := range s.columns {
		if col.Position >= next {
			next = col.Position + 1
		}
	}
	s.mu.Unlock()

	created, err := s.repo.CreateColumn(ctx, s.userID, name, next)
	if err != nil {
		return nil, &models.PersistenceError{Op: "create column", Err: err}
	}

	s.mu.Lock()
	s.columns = append(s.columns, created)
	s.mu.Unlock()

	return created, nil
}

// Rename persists the new name, updating the cache only on success.
func (s *Service) Rename(ctx context.Context, id, name string) error {
	if id == "" {
		return ErrInvalidID
	}
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > 50 {
		return ErrNameTooLong
	}

	if err := s.repo.RenameColumn(ctx, id, name); err != nil {
		if err == database.ErrColumnNotFound {
			return ErrColumnNotFound
		}
		return &models.PersistenceError{Op: "rename column", Err: err}
	}

	s.mu.Lock()
	for i, col := range s.columns {
		if col.ID == id {
			renamed := *col
			renamed.Name = name
			s.columns[i] = &renamed
			break
		}
	}
	s.mu.Unlock()

	return nil
}

// Delete removes a non-default column. The storage collaborator migrates the
// column's cards to the default column before the row disappears; the caller
// must re-fetch card placements afterwards to pick up the migration.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}

	s.mu.Lock()
	var target *models.Column
	for _, col := range s.columns {
		if col.ID == id {
			target = col
			break
		}
	}
	s.mu.Unlock()

	if target == nil {
		return ErrColumnNotFound
	}
	if target.IsDefault {
		// The default column is the safety net for migrated cards; the UI
		// must never offer to delete it.
		return ErrDefaultColumn
	}

	if err := s.repo.DeleteColumn(ctx, id); err != nil {
		switch err {
		case database.ErrColumnNotFound:
			return ErrColumnNotFound
		case database.ErrDefaultColumn:
			return ErrDefaultColumn
		default:
			return &models.PersistenceError{Op: "delete column", Err: err}
		}
	}

	s.mu.Lock()
	remaining := make([]*models.Column, 0, len(s.columns)-1)
	for _, col := range s.columns {
		if col.ID != id {
			remaining = append(remaining, col)
		}
	}
	s.columns = board.ReindexColumns(remaining)
	s.mu.Unlock()

	return nil
}

// Reorder is the optimistic path. The cache is rewritten immediately so the
// board reflects the drop without waiting on I/O, then the full reindexed
// set is persisted as one batch. On failure the optimistic state is
// discarded and the authoritative list re-fetched; a batch reorder is
// atomic-or-nothing from the UI's perspective, so there is no partial
// rollback.
//
// The batch must cover every column the user owns: a subset would silently
// break the dense-rank invariant.
func (s *Service) Reorder(ctx context.Context, ordered []*models.Column) error {
	s.mu.Lock()
	if !sameIDSet(s.columns, ordered) {
		s.mu.Unlock()
		return ErrIncompleteReorder
	}
	reindexed := board.ReindexColumns(ordered)
	s.columns = reindexed
	s.mu.Unlock()

	if err := s.repo.UpsertColumnOrder(ctx, reindexed); err != nil {
		if _, loadErr := s.Load(ctx); loadErr != nil {
			slog.Error("failed to resynchronize columns after reorder failure", "error", loadErr)
		}
		return &models.PersistenceError{Op: "reorder columns", Err: err}
	}

	return nil
}

func sameIDSet(a, b []*models.Column) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[string]bool, len(a))
	for _, col := range a {
		ids[col.ID] = true
	}
	for _, col := range b {
		if !ids[col.ID] {
			return false
		}
	}
	return true
}
