package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tablero/internal/models"
)

// ColumnProps carries everything needed to render one column and its cards.
type ColumnProps struct {
	Column *models.Column
	Cards  []*models.Card
	Styles *Styles

	// Width and Height are the total box dimensions including borders.
	Width      int
	Height     int
	CardHeight int

	Selected     bool   // Keyboard selection
	SelectedCard int    // Index of the selected card, -1 when not this column
	DraggedCard  string // ID of the card being dragged, empty when none
	DropIndex    int    // Live drop slot in this column, -1 when none

	Dragged    bool // This column is the one being dragged
	DropTarget bool // A column drag would land at this column's slot
}

// RenderColumn renders a complete column: header with card count, then the
// cards stacked adjacently. Cards that do not fit are clipped behind a
// "more below" indicator.
//
//	{Name} ({count})
//	{Card 1}
//	{Card 2}
//	▼ 3 more
func RenderColumn(props ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", props.Column.Name, len(props.Cards))
	if props.Column.IsDefault {
		header += " •"
	}

	titleStyle := props.Styles.Title
	if props.Dragged {
		titleStyle = props.Styles.Subtle
	}
	content := titleStyle.Render(truncate(header, props.Width-2)) + "\n"

	if len(props.Cards) == 0 {
		if props.DropIndex == 0 {
			content += props.Styles.DropSlot.Width(props.Width - 2).Render("▸ drop here")
		} else {
			content += props.Styles.Subtle.Italic(true).Render(" No cards")
		}
	} else {
		contentHeight := props.Height - 2*ColumnBorderWidth - ColumnHeaderLines
		maxVisible := max(contentHeight/props.CardHeight, 1)

		visible := props.Cards
		clipped := 0
		if len(visible) > maxVisible {
			clipped = len(visible) - maxVisible
			visible = visible[:maxVisible]
		}

		var lines []string
		for i, card := range visible {
			lines = append(lines, RenderCard(CardProps{
				Card:       card,
				Styles:     props.Styles,
				Width:      props.Width - 2*ColumnBorderWidth,
				Height:     props.CardHeight,
				Selected:   props.Selected && i == props.SelectedCard,
				Dragged:    card.ID == props.DraggedCard,
				DropTarget: i == props.DropIndex,
			}))
		}
		content += strings.Join(lines, "\n")

		if clipped > 0 {
			content += "\n" + props.Styles.Subtle.
				Align(lipgloss.Center).
				Width(props.Width-2).
				Render(fmt.Sprintf("▼ %d more", clipped))
		} else if props.DropIndex == len(props.Cards) {
			// Past-the-end slot: the drag would append after the last card.
			content += "\n" + props.Styles.DropSlot.Width(props.Width - 2).Render("▸ drop here")
		}
	}

	style := props.Styles.Column
	switch {
	case props.DropTarget:
		style = props.Styles.SelectedColumn.BorderForeground(
			lipgloss.Color(props.Styles.Theme().DropTarget))
	case props.Selected:
		style = props.Styles.SelectedColumn
	}

	return style.
		Width(props.Width - 2*ColumnBorderWidth).
		Height(props.Height - 2*ColumnBorderWidth).
		Render(content)
}
