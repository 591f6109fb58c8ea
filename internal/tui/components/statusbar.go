package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarProps configures the status bar line.
type StatusBarProps struct {
	Width  int
	Styles *Styles

	// Notice replaces the default left text when set.
	Notice   string
	IsError  bool
	Dragging bool
}

// RenderStatusBar renders a one-line bar with left and right aligned text.
// Left side: app name, or the latest notification. Right side: help hint.
func RenderStatusBar(props StatusBarProps) string {
	leftText := StatusBarAppName
	leftStyle := props.Styles.Subtle
	switch {
	case props.Notice != "":
		leftText = props.Notice
		if props.IsError {
			leftStyle = props.Styles.Error
		}
	case props.Dragging:
		leftText = "dragging… release to drop, move away to cancel"
	}

	leftRendered := leftStyle.Render(leftText)
	rightRendered := props.Styles.Subtle.Render(StatusBarHelp)

	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}
