package components

import (
	"github.com/charmbracelet/lipgloss"

	"tablero/internal/config"
)

// Styles bundles the lipgloss styles derived from the configured theme. Build
// it once at startup and pass it through the render tree.
type Styles struct {
	Column         lipgloss.Style
	SelectedColumn lipgloss.Style
	Title          lipgloss.Style
	Card           lipgloss.Style
	SelectedCard   lipgloss.Style
	DraggedCard    lipgloss.Style
	DropTargetCard lipgloss.Style
	DropSlot       lipgloss.Style
	Subtle         lipgloss.Style
	Error          lipgloss.Style

	theme config.Theme
}

// NewStyles builds the style set from the theme.
func NewStyles(theme config.Theme) *Styles {
	columnBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 0)

	cardBase := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder())

	return &Styles{
		Column: columnBase.
			BorderForeground(lipgloss.Color(theme.ColumnBorder)),
		SelectedColumn: columnBase.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)),
		Card: cardBase.
			BorderForeground(lipgloss.Color(theme.ColumnBorder)).
			Background(lipgloss.Color(theme.CardBg)),
		SelectedCard: cardBase.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Background(lipgloss.Color(theme.SelectedBg)),
		DraggedCard: cardBase.
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(theme.DraggedBg)),
		DropTargetCard: cardBase.
			BorderForeground(lipgloss.Color(theme.DropTarget)).
			Background(lipgloss.Color(theme.CardBg)),
		DropSlot: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DropTarget)).
			Align(lipgloss.Center),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorFg)),

		theme: theme,
	}
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() config.Theme {
	return s.theme
}
