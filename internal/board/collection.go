// Package board holds the pure ordering logic for the kanban board: grouping
// cards into columns, dense reindexing, and the move/relocate primitives the
// drag reconciliation is built from. Nothing in this package performs I/O or
// mutates its inputs.
package board

import (
	"sort"

	"tablero/internal/models"
)

// GroupCardsByColumn buckets cards by their column and sorts each bucket
// ascending by position. The sort is stable: duplicate positions are a
// recoverable data anomaly, resolved by insertion order rather than an error.
//
// A card referencing a column that does not exist is assigned to the default
// column (or the first column when no default exists) instead of being
// dropped, so a render pass never loses data while the backing store is
// briefly inconsistent. With no columns at all the result is empty.
func GroupCardsByColumn(columns []*models.Column, cards []*models.Card) map[string][]*models.Card {
	grouped := make(map[string][]*models.Card, len(columns))
	if len(columns) == 0 {
		return grouped
	}

	known := make(map[string]bool, len(columns))
	fallback := columns[0].ID
	for _, col := range columns {
		known[col.ID] = true
		grouped[col.ID] = nil
		if col.IsDefault {
			fallback = col.ID
		}
	}

	for _, card := range cards {
		id := card.ColumnID
		if !known[id] {
			id = fallback
		}
		grouped[id] = append(grouped[id], card)
	}

	for id := range grouped {
		bucket := grouped[id]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Position < bucket[j].Position
		})
	}

	return grouped
}

// ReindexCards returns a new list in which element i carries position i.
// The input cards are copied, never mutated.
func ReindexCards(cards []*models.Card) []*models.Card {
	out := make([]*models.Card, len(cards))
	for i, card := range cards {
		c := *card
		c.Position = i
		out[i] = &c
	}
	return out
}

// ReindexColumns returns a new list in which element i carries position i.
// The input columns are copied, never mutated.
func ReindexColumns(columns []*models.Column) []*models.Column {
	out := make([]*models.Column, len(columns))
	for i, col := range columns {
		c := *col
		c.Position = i
		out[i] = &c
	}
	return out
}

// MoveCard extracts the card at from and reinserts it at to, where to indexes
// the list after the removal. The result is reindexed. Moving an element onto
// itself is a no-op apart from reindexing.
func MoveCard(cards []*models.Card, from, to int) []*models.Card {
	if from < 0 || from >= len(cards) {
		return ReindexCards(cards)
	}
	return ReindexCards(moveCard(cards, from, to))
}

// MoveColumn is MoveCard for column lists.
func MoveColumn(columns []*models.Column, from, to int) []*models.Column {
	if from < 0 || from >= len(columns) {
		return ReindexColumns(columns)
	}
	if to < 0 {
		to = 0
	}
	if to > len(columns)-1 {
		to = len(columns) - 1
	}
	out := make([]*models.Column, 0, len(columns))
	out = append(out, columns[:from]...)
	out = append(out, columns[from+1:]...)
	out = append(out[:to], append([]*models.Column{columns[from]}, out[to:]...)...)
	return ReindexColumns(out)
}

func moveCard(cards []*models.Card, from, to int) []*models.Card {
	if to < 0 {
		to = 0
	}
	if to > len(cards)-1 {
		to = len(cards) - 1
	}
	out := make([]*models.Card, 0, len(cards))
	out = append(out, cards[:from]...)
	out = append(out, cards[from+1:]...)
	out = append(out[:to], append([]*models.Card{cards[from]}, out[to:]...)...)
	return out
}

// Relocate removes the card with the given id from src and inserts it into
// dst at dstIndex, clamped to [0, len(dst)]. Both resulting lists are
// reindexed. When the card is not found in src both lists are returned
// reindexed but otherwise unchanged.
func Relocate(src, dst []*models.Card, cardID string, dstIndex int) (newSrc, newDst []*models.Card) {
	from := -1
	for i, card := range src {
		if card.ID == cardID {
			from = i
			break
		}
	}
	if from == -1 {
		return ReindexCards(src), ReindexCards(dst)
	}

	moved := src[from]
	remaining := make([]*models.Card, 0, len(src)-1)
	remaining = append(remaining, src[:from]...)
	remaining = append(remaining, src[from+1:]...)

	if dstIndex < 0 {
		dstIndex = 0
	}
	if dstIndex > len(dst) {
		dstIndex = len(dst)
	}
	inserted := make([]*models.Card, 0, len(dst)+1)
	inserted = append(inserted, dst[:dstIndex]...)
	inserted = append(inserted, moved)
	inserted = append(inserted, dst[dstIndex:]...)

	return ReindexCards(remaining), ReindexCards(inserted)
}
