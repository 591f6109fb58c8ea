package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tablero/internal/drag"
	"tablero/internal/tui/components"
	"tablero/internal/tui/state"
)

const helpText = `Navigation
  h/l, ←/→     select column        j/k, ↑/↓   select card
  enter        view card notes      r          reload board

Moving things
  drag         move cards and columns with the mouse
  J/K          move card within its column
  [ / ]        move card to the adjacent column
  H/L          move column left or right

Columns
  N            new column           R          rename column
  D            delete column (cards move to the default column)

Cards
  a            add a note to the board (lands in the default column)
  b            remove card from the board

q quits, esc dismisses.`

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() string {
	if m.uiState.Width() == 0 {
		return "Loading..."
	}

	switch m.uiState.Mode() {
	case state.AddColumnMode, state.RenameColumnMode, state.AddCardMode:
		return m.viewForm()
	case state.DeleteColumnConfirmMode:
		return m.viewDeleteConfirm()
	case state.DetailMode:
		return m.viewDetail()
	case state.HelpMode:
		return m.centered(helpBoxStyle(m.styles).Render(helpText))
	}

	return m.viewBoard()
}

func (m Model) viewBoard() string {
	columns := m.appState.Columns()
	if len(columns) == 0 {
		empty := m.styles.Subtle.Render("No columns yet. Press N to create one.")
		return m.centered(empty)
	}

	// Live drop feedback from the drag session.
	var over *drag.Target
	var draggedCard, draggedColumn string
	if m.session.Active() {
		over = m.session.Over()
		switch m.session.Kind() {
		case drag.KindCard:
			draggedCard = m.session.ItemID()
		case drag.KindColumn:
			draggedColumn = m.session.ItemID()
		}
	}

	offset := m.uiState.ViewportOffset()
	end := min(offset+m.uiState.ViewportSize(), len(columns))

	var rendered []string
	for i := offset; i < end; i++ {
		col := columns[i]

		selectedCard := -1
		if i == m.uiState.SelectedColumn() {
			selectedCard = m.uiState.SelectedCard()
		}

		dropIndex := -1
		columnDropTarget := false
		if over != nil {
			if draggedCard != "" && over.ColumnID == col.ID {
				dropIndex = over.Index
			}
			if draggedColumn != "" && over.Index == i {
				columnDropTarget = true
			}
		}

		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Cards:        m.appState.Cards()[col.ID],
			Styles:       m.styles,
			Width:        m.cfg.Board.ColumnWidth,
			Height:       m.boardHeight(),
			CardHeight:   m.cfg.Board.CardHeight,
			Selected:     i == m.uiState.SelectedColumn(),
			SelectedCard: selectedCard,
			DraggedCard:  draggedCard,
			DropIndex:    dropIndex,
			Dragged:      col.ID == draggedColumn,
			DropTarget:   columnDropTarget,
		}))
	}

	boardRow := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	notice, isError := "", false
	if m.reconciling {
		notice = "saving…"
	}
	if latest := m.notifications.Latest(); latest != nil {
		notice = latest.Message
		isError = latest.Level == state.LevelError
	}

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:    m.uiState.Width(),
		Styles:   m.styles,
		Notice:   notice,
		IsError:  isError,
		Dragging: m.session.Active(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, boardRow, statusBar)
}

func (m Model) viewForm() string {
	if m.form == nil {
		return m.viewBoard()
	}
	formBox := formBoxStyle(m.styles).
		Width(50).
		Render(m.form.View())
	return m.centered(formBox)
}

func (m Model) viewDeleteConfirm() string {
	col := m.currentColumn()
	name := ""
	if col != nil {
		name = col.Name
	}
	body := "Delete column " + m.styles.Title.Render(name) + "?\n\n" +
		m.styles.Subtle.Render("Its cards move to the default column.") + "\n\n" +
		"y: delete   n: cancel"
	return m.centered(confirmBoxStyle(m.styles).Width(50).Render(body))
}

func (m Model) viewDetail() string {
	if m.currentCard() == nil {
		return m.viewBoard()
	}
	box := components.DetailBoxStyle(m.styles).Render(m.detail.View())
	return m.centered(box)
}

func (m Model) centered(content string) string {
	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
