// Package tui binds the board state to the terminal: it renders columns and
// cards, translates keyboard and mouse input into board operations, and owns
// the optimistic update loop against the column and placement services.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tablero/internal/config"
	"tablero/internal/drag"
	"tablero/internal/models"
	"tablero/internal/services/column"
	"tablero/internal/services/placement"
	"tablero/internal/tui/components"
	"tablero/internal/tui/state"
)

// Model is the bubbletea model for the board.
type Model struct {
	columns    *column.Service
	placements *placement.Service
	cfg        *config.Config
	styles     *components.Styles

	appState      *state.AppState
	uiState       *state.UIState
	notifications *state.NotificationState

	// session is the transient drag gesture; layout mirrors the last render
	// pass so pointer positions resolve against what is actually on screen.
	session *drag.Session
	layout  *drag.Layout

	// reconciling guards the persistence pipeline: while a reconciliation is
	// in flight, new drops are cancelled instead of queued, so writes for one
	// gesture never interleave with another's.
	reconciling bool

	// Column form state. form is non-nil only in the add/rename modes.
	// formName is a pointer because the form keeps writing through it while
	// the model value gets copied between updates.
	form           *huh.Form
	formName       *string
	renameTargetID string
	deleteTargetID string

	// notePick receives the backlog picker's selection, a pointer for the
	// same copy-survival reason as formName.
	notePick *string

	// detail scrolls the note body overlay. Rebuilt each time a card is
	// opened.
	detail viewport.Model
}

// InitialModel creates the TUI model. Data is loaded by the Init command, not
// here, so program startup stays non-blocking.
func InitialModel(columns *column.Service, placements *placement.Service, cfg *config.Config) Model {
	return Model{
		columns:       columns,
		placements:    placements,
		cfg:           cfg,
		styles:        components.NewStyles(cfg.Theme),
		appState:      state.NewAppState(nil, nil),
		uiState:       state.NewUIState(),
		notifications: state.NewNotificationState(),
		session:       drag.NewSession(),
	}
}

// Init starts the initial board load.
// Required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	return m.reloadCmd()
}

// boardHeight is the vertical space available for columns, above the status
// bar.
func (m Model) boardHeight() int {
	h := m.uiState.Height() - 1
	if h < components.CardContentTop+2 {
		h = components.CardContentTop + 2
	}
	return h
}

// rebuildLayout refreshes the collision geometry after anything that changes
// what is on screen.
func (m *Model) rebuildLayout() {
	m.layout = BuildLayout(
		m.appState.Columns(),
		m.appState.Cards(),
		m.cfg.Board,
		m.uiState.ViewportOffset(),
		m.boardHeight(),
	)
}

// currentColumn returns the keyboard-selected column, or nil when the board
// is empty.
func (m Model) currentColumn() *models.Column {
	return m.appState.ColumnAt(m.uiState.SelectedColumn())
}

// currentCards returns the cards of the keyboard-selected column.
func (m Model) currentCards() []*models.Card {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	return m.appState.Cards()[col.ID]
}

// currentCard returns the keyboard-selected card, or nil when the selected
// column has none.
func (m Model) currentCard() *models.Card {
	return m.appState.CardAt(m.uiState.SelectedColumn(), m.uiState.SelectedCard())
}
