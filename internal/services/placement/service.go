// Package placement owns the board-facing subset of note state: which cards
// are on the board, in which column, at which position. It persists the
// reconciliation plans produced by drag gestures.
package placement

import (
	"context"

	"tablero/internal/board"
	"tablero/internal/database"
	"tablero/internal/models"
)

// Service manages card placements for one user.
type Service struct {
	repo   database.CardRepository
	userID string
}

func NewService(repo database.CardRepository, userID string) *Service {
	return &Service{repo: repo, userID: userID}
}

// ListForBoard fetches the cards currently shown on the board, ordered by
// position. Ties are resolved by the grouping step, not here.
func (s *Service) ListForBoard(ctx context.Context) ([]*models.Card, error) {
	cards, err := s.repo.GetBoardCards(ctx, s.userID)
	if err != nil {
		return nil, &models.FetchError{Op: "board cards", Err: err}
	}
	return cards, nil
}

// ListBacklog fetches the notes not currently on the board, the candidates
// for a membership enable.
func (s *Service) ListBacklog(ctx context.Context) ([]*models.Card, error) {
	cards, err := s.repo.GetBacklogNotes(ctx, s.userID)
	if err != nil {
		return nil, &models.FetchError{Op: "backlog notes", Err: err}
	}
	return cards, nil
}

// ApplyPlan persists a reconciliation plan, one independent write per card.
// The plan is expected to be reindexed and internally consistent already.
//
// This is not a transaction: a write can fail after earlier ones succeeded.
// In that case the returned PartialBatchError names the failed entry and the
// caller must re-fetch the canonical state instead of trusting its
// optimistic copy.
func (s *Service) ApplyPlan(ctx context.Context, plan board.PlacementPlan) error {
	for _, p := range plan {
		if p.CardID == "" || p.ColumnID == "" {
			return ErrInvalidPlan
		}
	}

	for i, p := range plan {
		if err := s.repo.UpdateCardPlacement(ctx, p.CardID, p.ColumnID, p.Position); err != nil {
			return &models.PartialBatchError{Op: "card placements", Index: i, Err: err}
		}
	}

	return nil
}

// SetBoardMembership toggles a card's presence on the board. Enabling places
// it at the front of the given column (normally the default column) so the
// user sees it without scrolling; disabling resets the placement to its
// neutral value.
func (s *Service) SetBoardMembership(ctx context.Context, cardID string, show bool, columnID string) (*models.Card, error) {
	if show && columnID == "" {
		return nil, ErrNoColumn
	}

	card, err := s.repo.SetBoardMembership(ctx, cardID, show, columnID)
	if err != nil {
		return nil, &models.PersistenceError{Op: "board membership", Err: err}
	}
	return card, nil
}
