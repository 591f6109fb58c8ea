package components

// Geometry shared between the renderer and the drag collision layout. The
// collision rectangles are derived from these same values, so a change here
// changes hit-testing too.
const (
	// ColumnBorderWidth is the thickness of a column's border on each side.
	ColumnBorderWidth = 1

	// ColumnHeaderLines is the number of content lines above the first card.
	ColumnHeaderLines = 1

	// CardContentTop is the row offset from a column's top edge to its first
	// card.
	CardContentTop = ColumnBorderWidth + ColumnHeaderLines

	cardTitleMaxLength = 24 // Display length for card titles before truncation
	metaMaxLength      = 26 // Display length for the card metadata line
)

// Status bar text.
const (
	StatusBarAppName = "Tablero - Meeting Notes"
	StatusBarHelp    = "press ? for help"
)
