package tui

import (
	"tablero/internal/config"
	"tablero/internal/drag"
	"tablero/internal/models"
	"tablero/internal/tui/components"
)

// BuildLayout derives the drag collision geometry from the same values the
// renderer uses. Every column is included, not just the visible ones:
// off-screen columns get coordinates past the viewport edge, which keeps
// their slice indices aligned with the board state while nearest-corner
// scoring naturally ranks them far away.
func BuildLayout(
	columns []*models.Column,
	cards map[string][]*models.Card,
	board config.Board,
	viewportOffset int,
	boardHeight int,
) *drag.Layout {
	layout := &drag.Layout{}

	for i, col := range columns {
		colX := (i - viewportOffset) * board.ColumnWidth
		colRect := drag.ColumnRect{
			ID: col.ID,
			Bounds: drag.Rect{
				X:      colX,
				Y:      0,
				Width:  board.ColumnWidth,
				Height: boardHeight,
			},
		}

		for j, card := range cards[col.ID] {
			colRect.Cards = append(colRect.Cards, drag.CardRect{
				ID: card.ID,
				Bounds: drag.Rect{
					X:      colX + components.ColumnBorderWidth,
					Y:      components.CardContentTop + j*board.CardHeight,
					Width:  board.ColumnWidth - 2*components.ColumnBorderWidth,
					Height: board.CardHeight,
				},
			})
		}

		layout.Columns = append(layout.Columns, colRect)
	}

	return layout
}

// pressTarget is what a mouse press resolved to.
type pressTarget struct {
	kind        drag.Kind
	columnIndex int
	cardIndex   int // Only meaningful for card presses
}

// hitTest resolves a press position to the card or column header under it.
// A press on a card starts a card drag; a press on the column header area
// starts a column drag. Presses on empty board space resolve to nothing.
func hitTest(layout *drag.Layout, p drag.Point) (pressTarget, bool) {
	for ci, col := range layout.Columns {
		if !col.Bounds.Contains(p) {
			continue
		}
		for cj, card := range col.Cards {
			if card.Bounds.Contains(p) {
				return pressTarget{kind: drag.KindCard, columnIndex: ci, cardIndex: cj}, true
			}
		}
		if p.Y < col.Bounds.Y+components.CardContentTop {
			return pressTarget{kind: drag.KindColumn, columnIndex: ci}, true
		}
		return pressTarget{}, false
	}
	return pressTarget{}, false
}
