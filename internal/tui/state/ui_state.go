package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	AddColumnMode                       // Creating a new column
	RenameColumnMode                    // Renaming an existing column
	DeleteColumnConfirmMode             // Confirming column deletion
	AddCardMode                         // Picking a backlog note to add to the board
	DetailMode                          // Viewing a card's full note body
	HelpMode                            // Displaying help screen
)

// UIState manages the user interface state: navigation, viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the keyboard-selected column
	selectedColumn int

	// selectedCard is the index of the selected card within the selected column
	selectedCard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int
}

// NewUIState creates a UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:         NormalMode,
		viewportSize: 1, // Recalculated when the window size arrives
	}
}

// SelectedColumn returns the index of the keyboard-selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the selected card index within the selected column.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetDimensions updates the terminal dimensions and recalculates how many
// columns fit.
func (s *UIState) SetDimensions(width, height, columnWidth int) {
	s.width = width
	s.height = height
	if columnWidth > 0 {
		s.viewportSize = max(width/columnWidth, 1)
	}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns how many columns fit on the screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// EnsureColumnVisible scrolls the viewport so the given column index is on
// screen.
func (s *UIState) EnsureColumnVisible(index int) {
	if index < s.viewportOffset {
		s.viewportOffset = index
	}
	if index >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = index - s.viewportSize + 1
	}
	if s.viewportOffset < 0 {
		s.viewportOffset = 0
	}
}

// ClampSelection keeps the selection and the viewport inside the current
// board shape after columns or cards changed underneath them.
func (s *UIState) ClampSelection(columnCount, cardCount int) {
	if s.selectedColumn >= columnCount {
		s.selectedColumn = columnCount - 1
	}
	if s.selectedColumn < 0 {
		s.selectedColumn = 0
	}
	if s.selectedCard >= cardCount {
		s.selectedCard = cardCount - 1
	}
	if s.selectedCard < 0 {
		s.selectedCard = 0
	}
	if s.viewportOffset > columnCount-s.viewportSize {
		s.viewportOffset = columnCount - s.viewportSize
	}
	if s.viewportOffset < 0 {
		s.viewportOffset = 0
	}
}
