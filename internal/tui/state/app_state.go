package state

import (
	"tablero/internal/models"
)

// AppState holds the board's domain data: the column list and the cards
// grouped per column. Both are snapshots owned by the UI; the services keep
// the authoritative copies.
type AppState struct {
	// columns is the user's column list ordered by position
	columns []*models.Column

	// cards maps column IDs to their cards, each list ordered by position
	cards map[string][]*models.Card
}

// NewAppState creates an AppState with the provided data. The cards map is
// never nil.
func NewAppState(columns []*models.Column, cards map[string][]*models.Card) *AppState {
	if cards == nil {
		cards = make(map[string][]*models.Card)
	}
	return &AppState{columns: columns, cards: cards}
}

// Columns returns the columns slice. Callers must not modify it.
func (s *AppState) Columns() []*models.Column {
	return s.columns
}

// SetColumns replaces the column list after a reload or optimistic reorder.
func (s *AppState) SetColumns(columns []*models.Column) {
	s.columns = columns
}

// Cards returns the cards map. Callers must not modify it.
func (s *AppState) Cards() map[string][]*models.Card {
	return s.cards
}

// SetCards replaces the grouped card map.
func (s *AppState) SetCards(cards map[string][]*models.Card) {
	if cards == nil {
		cards = make(map[string][]*models.Card)
	}
	s.cards = cards
}

// SetColumnCards replaces a single column's card list.
func (s *AppState) SetColumnCards(columnID string, cards []*models.Card) {
	s.cards[columnID] = cards
}

// ColumnAt returns the column at the given index, or nil when out of range.
func (s *AppState) ColumnAt(index int) *models.Column {
	if index < 0 || index >= len(s.columns) {
		return nil
	}
	return s.columns[index]
}

// CardAt returns the card at the given slot, or nil when out of range.
func (s *AppState) CardAt(columnIndex, cardIndex int) *models.Card {
	col := s.ColumnAt(columnIndex)
	if col == nil {
		return nil
	}
	cards := s.cards[col.ID]
	if cardIndex < 0 || cardIndex >= len(cards) {
		return nil
	}
	return cards[cardIndex]
}

// TotalCardCount returns the number of cards across all columns.
func (s *AppState) TotalCardCount() int {
	total := 0
	for _, cards := range s.cards {
		total += len(cards)
	}
	return total
}
