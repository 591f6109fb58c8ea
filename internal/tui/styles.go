package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tablero/internal/tui/components"
)

// formBoxStyle frames the column name form dialog.
func formBoxStyle(styles *components.Styles) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Theme().Accent)).
		Padding(1, 2)
}

// confirmBoxStyle frames the delete confirmation dialog.
func confirmBoxStyle(styles *components.Styles) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Theme().ErrorFg)).
		Padding(1, 2)
}

// helpBoxStyle frames the help screen.
func helpBoxStyle(styles *components.Styles) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Theme().ColumnBorder)).
		Padding(1, 2)
}
