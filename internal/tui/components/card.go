package components

import (
	"fmt"
	"strings"

	"tablero/internal/models"
)

// CardProps carries everything needed to render one card.
type CardProps struct {
	Card   *models.Card
	Styles *Styles

	// Width and Height are the total box dimensions including borders.
	Width  int
	Height int

	Selected   bool // Keyboard selection
	Dragged    bool // This card is the one being dragged
	DropTarget bool // The live drag would land on this card's slot
}

// RenderCard renders a single card as a fixed-size box:
//
//	┌─────────────────────┐
//	│ {Title}             │
//	│ P2 · 1/3 · due ...  │
//	└─────────────────────┘
func RenderCard(props CardProps) string {
	style := props.Styles.Card
	switch {
	case props.Dragged:
		style = props.Styles.DraggedCard
	case props.DropTarget:
		style = props.Styles.DropTargetCard
	case props.Selected:
		style = props.Styles.SelectedCard
	}

	innerWidth := props.Width - 2
	title := truncate(props.Card.Title, cardTitleMaxLength)
	meta := truncate(cardMeta(props.Card), metaMaxLength)

	content := " " + title
	contentLines := props.Height - 2
	if contentLines >= 2 {
		content += "\n " + props.Styles.Subtle.Render(meta)
	}
	// Pad to the fixed height so every card occupies the same box.
	for i := 2; i < contentLines; i++ {
		content += "\n"
	}

	return style.
		Width(innerWidth).
		Height(contentLines).
		Render(content)
}

// cardMeta builds the one-line summary under the title: priority, task
// progress, due date, and tags, skipping whatever is unset.
func cardMeta(card *models.Card) string {
	parts := []string{fmt.Sprintf("P%d", card.Priority)}

	if card.TasksTot > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", card.TasksDone, card.TasksTot))
	}
	if card.DueDate != nil {
		parts = append(parts, "due "+card.DueDate.Format("Jan 02"))
	}
	if len(card.Tags) > 0 {
		parts = append(parts, strings.Join(card.Tags, ","))
	}

	return strings.Join(parts, " · ")
}

// truncate shortens s to at most maxLen runes, ending in an ellipsis when
// anything was cut. Counts runes, not bytes, so multi-byte titles never get
// split mid-character.
func truncate(s string, maxLen int) string {
	if maxLen < 1 {
		maxLen = 1
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
