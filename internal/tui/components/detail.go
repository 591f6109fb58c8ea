package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"tablero/internal/models"
)

// DetailProps configures the card detail overlay.
type DetailProps struct {
	Card   *models.Card
	Styles *Styles
	Width  int
}

// Cache glamour renderers by width to avoid expensive re-creation.
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDetail renders a card's full note: title, metadata, and the markdown
// body through glamour. Falls back to the raw body if rendering fails.
func RenderDetail(props DetailProps) string {
	card := props.Card

	var b strings.Builder
	b.WriteString(props.Styles.Title.Render(card.Title))
	b.WriteString("\n")
	b.WriteString(props.Styles.Subtle.Render(cardMeta(card)))
	b.WriteString("\n\n")
	b.WriteString(renderBody(card.Body, props.Width-4, props.Styles))
	if card.TasksTot > 0 {
		b.WriteString("\n\n")
		b.WriteString(props.Styles.Subtle.Render(
			fmt.Sprintf("tasks: %d of %d done", card.TasksDone, card.TasksTot)))
	}

	return b.String()
}

func renderBody(body string, width int, styles *Styles) string {
	if body == "" {
		return styles.Subtle.Italic(true).Render("No notes yet")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return body
	}
	rendered, err := renderer.Render(body)
	if err != nil {
		return body
	}
	return strings.TrimSpace(rendered)
}

// DetailBoxStyle frames the detail overlay.
func DetailBoxStyle(styles *Styles) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Theme().SelectedBorder)).
		Padding(1, 2)
}
