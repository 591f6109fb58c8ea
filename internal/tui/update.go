package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tablero/internal/board"
	"tablero/internal/drag"
	"tablero/internal/models"
	"tablero/internal/tui/components"
	"tablero/internal/tui/huhforms"
	"tablero/internal/tui/state"
)

// ============================================================================
// MESSAGES
// ============================================================================

// reloadedMsg carries a fresh authoritative board snapshot.
type reloadedMsg struct {
	columns []*models.Column
	cards   map[string][]*models.Card
	err     error
}

// planPersistedMsg reports the outcome of writing a card placement plan.
type planPersistedMsg struct{ err error }

// columnsPersistedMsg reports the outcome of writing a column reorder.
type columnsPersistedMsg struct{ err error }

// columnMutatedMsg reports the outcome of a column create/rename/delete.
type columnMutatedMsg struct{ err error }

// membershipChangedMsg reports the outcome of a board membership toggle.
type membershipChangedMsg struct{ err error }

// backlogMsg carries the off-board notes for the add-to-board picker.
type backlogMsg struct {
	notes []*models.Card
	err   error
}

// ============================================================================
// COMMANDS
// ============================================================================

func (m Model) reloadCmd() tea.Cmd {
	columns, placements := m.columns, m.placements
	return func() tea.Msg {
		ctx := context.Background()
		cols, err := columns.Load(ctx)
		if err != nil {
			return reloadedMsg{err: err}
		}
		cards, err := placements.ListForBoard(ctx)
		if err != nil {
			return reloadedMsg{err: err}
		}
		return reloadedMsg{columns: cols, cards: board.GroupCardsByColumn(cols, cards)}
	}
}

func (m Model) persistPlanCmd(plan board.PlacementPlan) tea.Cmd {
	placements := m.placements
	return func() tea.Msg {
		return planPersistedMsg{err: placements.ApplyPlan(context.Background(), plan)}
	}
}

func (m Model) persistColumnsCmd(ordered []*models.Column) tea.Cmd {
	columns := m.columns
	return func() tea.Msg {
		return columnsPersistedMsg{err: columns.Reorder(context.Background(), ordered)}
	}
}

func (m Model) createColumnCmd(name string) tea.Cmd {
	columns := m.columns
	return func() tea.Msg {
		_, err := columns.Create(context.Background(), name)
		return columnMutatedMsg{err: err}
	}
}

func (m Model) renameColumnCmd(id, name string) tea.Cmd {
	columns := m.columns
	return func() tea.Msg {
		return columnMutatedMsg{err: columns.Rename(context.Background(), id, name)}
	}
}

func (m Model) deleteColumnCmd(id string) tea.Cmd {
	columns := m.columns
	return func() tea.Msg {
		return columnMutatedMsg{err: columns.Delete(context.Background(), id)}
	}
}

func (m Model) hideCardCmd(id string) tea.Cmd {
	placements := m.placements
	return func() tea.Msg {
		_, err := placements.SetBoardMembership(context.Background(), id, false, "")
		return membershipChangedMsg{err: err}
	}
}

func (m Model) showCardCmd(id, columnID string) tea.Cmd {
	placements := m.placements
	return func() tea.Msg {
		_, err := placements.SetBoardMembership(context.Background(), id, true, columnID)
		return membershipChangedMsg{err: err}
	}
}

func (m Model) backlogCmd() tea.Cmd {
	placements := m.placements
	return func() tea.Msg {
		notes, err := placements.ListBacklog(context.Background())
		return backlogMsg{notes: notes, err: err}
	}
}

// ============================================================================
// UPDATE
// ============================================================================

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.uiState.SetDimensions(msg.Width, msg.Height, m.cfg.Board.ColumnWidth)
		m.rebuildLayout()
		return m, nil

	case reloadedMsg:
		return m.handleReloaded(msg)

	case planPersistedMsg:
		return m.handlePersisted("card move", msg.err)

	case columnsPersistedMsg:
		return m.handlePersisted("column order", msg.err)

	case columnMutatedMsg:
		if msg.err != nil {
			m.notifications.Add(state.LevelError, msg.err.Error())
			slog.Error("column mutation failed", "error", msg.err)
		}
		// Always re-fetch: a delete migrates cards in storage, so the local
		// card map is stale either way.
		return m, m.reloadCmd()

	case membershipChangedMsg:
		if msg.err != nil {
			m.notifications.Add(state.LevelError, msg.err.Error())
			slog.Error("membership toggle failed", "error", msg.err)
		}
		return m, m.reloadCmd()

	case backlogMsg:
		return m.handleBacklog(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Forms run on their own message stream (blink ticks and the like).
	if m.form != nil {
		return m.updateForm(msg)
	}

	return m, nil
}

func (m Model) handleReloaded(msg reloadedMsg) (tea.Model, tea.Cmd) {
	m.reconciling = false
	if msg.err != nil {
		// Keep showing the previous snapshot; the stores kept theirs too.
		m.notifications.Add(state.LevelError, "failed to load board: "+msg.err.Error())
		slog.Error("board reload failed", "error", msg.err)
		return m, nil
	}

	m.appState.SetColumns(msg.columns)
	m.appState.SetCards(msg.cards)
	m.uiState.ClampSelection(len(msg.columns), len(m.currentCards()))
	m.rebuildLayout()
	return m, nil
}

func (m Model) handleBacklog(msg backlogMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notifications.Add(state.LevelError, "failed to load notes: "+msg.err.Error())
		slog.Error("backlog load failed", "error", msg.err)
		return m, nil
	}
	if len(msg.notes) == 0 {
		m.notifications.Add(state.LevelInfo, "no notes off the board")
		return m, nil
	}

	pick := msg.notes[0].ID
	m.notePick = &pick
	m.form = huhforms.BacklogPickerForm(msg.notes, m.notePick)
	m.uiState.SetMode(state.AddCardMode)
	return m, m.form.Init()
}

func (m Model) handlePersisted(what string, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		// The optimistic state is now suspect. Discard it wholesale by
		// re-fetching; reconciling stays set until the reload lands.
		m.notifications.Add(state.LevelError, "failed to save "+what)
		slog.Error("persist failed", "what", what, "error", err)
		return m, m.reloadCmd()
	}
	m.reconciling = false
	return m, nil
}

// ============================================================================
// MOUSE
// ============================================================================

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.uiState.Mode() != state.NormalMode || m.layout == nil {
		return m, nil
	}

	p := drag.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handlePress(p)

	case tea.MouseActionMotion:
		if m.session.Active() {
			m.session.Move(p, m.layout)
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.session.Active() {
			return m, nil
		}
		return m.handleDrop()
	}

	return m, nil
}

func (m Model) handlePress(p drag.Point) (tea.Model, tea.Cmd) {
	target, ok := hitTest(m.layout, p)
	if !ok {
		return m, nil
	}

	m.uiState.SetSelectedColumn(target.columnIndex)

	switch target.kind {
	case drag.KindColumn:
		col := m.appState.ColumnAt(target.columnIndex)
		if col != nil {
			m.session.StartColumn(col.ID, target.columnIndex)
		}
	case drag.KindCard:
		m.uiState.SetSelectedCard(target.cardIndex)
		card := m.appState.CardAt(target.columnIndex, target.cardIndex)
		if card != nil {
			m.session.StartCard(card.ID, card.ColumnID, target.cardIndex)
		}
	}
	return m, nil
}

func (m Model) handleDrop() (tea.Model, tea.Cmd) {
	if m.reconciling {
		// One reconciliation in flight at a time. An overlapping gesture is
		// cancelled rather than queued.
		m.session.Cancel()
		m.notifications.Add(state.LevelInfo, "still saving the previous move")
		return m, nil
	}

	rec := m.session.Drop(m.appState.Columns(), m.appState.Cards())
	if rec == nil {
		return m, nil
	}
	return m.applyReconciliation(rec)
}

// applyReconciliation performs the optimistic update and kicks off the
// persistence write. The board redraws from the optimistic state immediately.
func (m Model) applyReconciliation(rec *drag.Reconciliation) (tea.Model, tea.Cmd) {
	m.reconciling = true

	if rec.Columns != nil {
		m.appState.SetColumns(rec.Columns)
		m.rebuildLayout()
		return m, m.persistColumnsCmd(rec.Columns)
	}

	m.applyPlanOptimistic(rec.Plan)
	m.rebuildLayout()
	return m, m.persistPlanCmd(rec.Plan)
}

// applyPlanOptimistic rewrites the local card map as if the plan had already
// been persisted, regrouping through the same path a fresh load uses.
func (m *Model) applyPlanOptimistic(plan board.PlacementPlan) {
	byID := make(map[string]board.Placement, len(plan))
	for _, p := range plan {
		byID[p.CardID] = p
	}

	var flat []*models.Card
	for _, cards := range m.appState.Cards() {
		for _, c := range cards {
			if p, ok := byID[c.ID]; ok {
				moved := *c
				moved.ColumnID = p.ColumnID
				moved.Position = p.Position
				flat = append(flat, &moved)
				continue
			}
			flat = append(flat, c)
		}
	}

	m.appState.SetCards(board.GroupCardsByColumn(m.appState.Columns(), flat))
}

// ============================================================================
// KEYBOARD
// ============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.AddColumnMode, state.RenameColumnMode, state.AddCardMode:
		return m.updateForm(msg)

	case state.DeleteColumnConfirmMode:
		return m.handleDeleteConfirmKey(msg)

	case state.DetailMode:
		switch msg.String() {
		case "esc", "q", "enter":
			m.uiState.SetMode(state.NormalMode)
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case state.HelpMode:
		switch msg.String() {
		case "esc", "q", "enter", "?":
			m.uiState.SetMode(state.NormalMode)
		}
		return m, nil
	}

	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.session.Active() {
			m.session.Cancel()
		}
		m.notifications.Clear()
		return m, nil

	case "h", "left":
		m.selectColumn(m.uiState.SelectedColumn() - 1)
		return m, nil
	case "l", "right":
		m.selectColumn(m.uiState.SelectedColumn() + 1)
		return m, nil
	case "j", "down":
		m.selectCard(m.uiState.SelectedCard() + 1)
		return m, nil
	case "k", "up":
		m.selectCard(m.uiState.SelectedCard() - 1)
		return m, nil

	case "H", "shift+left":
		return m.moveColumnBy(-1)
	case "L", "shift+right":
		return m.moveColumnBy(1)
	case "J", "shift+down":
		return m.moveCardWithin(1)
	case "K", "shift+up":
		return m.moveCardWithin(-1)
	case "[":
		return m.moveCardAcross(-1)
	case "]":
		return m.moveCardAcross(1)

	case "N":
		return m.openColumnForm(state.AddColumnMode, "")
	case "R":
		col := m.currentColumn()
		if col == nil {
			return m, nil
		}
		return m.openColumnForm(state.RenameColumnMode, col.ID)
	case "D":
		col := m.currentColumn()
		if col == nil {
			return m, nil
		}
		if col.IsDefault {
			m.notifications.Add(state.LevelError, "the default column cannot be deleted")
			return m, nil
		}
		m.deleteTargetID = col.ID
		m.uiState.SetMode(state.DeleteColumnConfirmMode)
		return m, nil

	case "a":
		return m, m.backlogCmd()

	case "b":
		card := m.currentCard()
		if card == nil {
			return m, nil
		}
		return m, m.hideCardCmd(card.ID)

	case "enter", " ":
		return m.openDetail()

	case "?":
		m.uiState.SetMode(state.HelpMode)
		return m, nil

	case "r":
		return m, m.reloadCmd()
	}

	return m, nil
}

func (m *Model) selectColumn(index int) {
	columns := m.appState.Columns()
	if index < 0 || index >= len(columns) {
		return
	}
	m.uiState.SetSelectedColumn(index)
	m.uiState.EnsureColumnVisible(index)
	m.uiState.ClampSelection(len(columns), len(m.currentCards()))
	m.rebuildLayout()
}

func (m *Model) selectCard(index int) {
	cards := m.currentCards()
	if index < 0 || index >= len(cards) {
		return
	}
	m.uiState.SetSelectedCard(index)
}

// moveColumnBy reorders the selected column one slot left or right. Keyboard
// moves share the reconciliation pipeline with drops.
func (m Model) moveColumnBy(delta int) (tea.Model, tea.Cmd) {
	if m.reconciling {
		m.notifications.Add(state.LevelInfo, "still saving the previous move")
		return m, nil
	}

	from := m.uiState.SelectedColumn()
	to := from + delta
	columns := m.appState.Columns()
	if from >= len(columns) || to < 0 || to >= len(columns) {
		return m, nil
	}

	m.uiState.SetSelectedColumn(to)
	m.uiState.EnsureColumnVisible(to)
	return m.applyReconciliation(&drag.Reconciliation{
		Columns: board.MoveColumn(columns, from, to),
	})
}

// moveCardWithin moves the selected card one slot up or down in its column.
func (m Model) moveCardWithin(delta int) (tea.Model, tea.Cmd) {
	if m.reconciling {
		m.notifications.Add(state.LevelInfo, "still saving the previous move")
		return m, nil
	}

	col := m.currentColumn()
	cards := m.currentCards()
	from := m.uiState.SelectedCard()
	to := from + delta
	if col == nil || from >= len(cards) || to < 0 || to >= len(cards) {
		return m, nil
	}

	m.uiState.SetSelectedCard(to)
	moved := board.MoveCard(cards, from, to)
	return m.applyReconciliation(&drag.Reconciliation{
		Plan: board.PlanForColumn(col.ID, moved),
	})
}

// moveCardAcross relocates the selected card to the adjacent column, keeping
// its vertical slot where possible.
func (m Model) moveCardAcross(delta int) (tea.Model, tea.Cmd) {
	if m.reconciling {
		m.notifications.Add(state.LevelInfo, "still saving the previous move")
		return m, nil
	}

	srcIdx := m.uiState.SelectedColumn()
	dstIdx := srcIdx + delta
	src := m.appState.ColumnAt(srcIdx)
	dst := m.appState.ColumnAt(dstIdx)
	card := m.currentCard()
	if src == nil || dst == nil || card == nil {
		return m, nil
	}

	cards := m.appState.Cards()
	newSrc, newDst := board.Relocate(cards[src.ID], cards[dst.ID], card.ID, m.uiState.SelectedCard())
	plan := board.PlanForColumn(src.ID, newSrc)
	plan = append(plan, board.PlanForColumn(dst.ID, newDst)...)

	m.uiState.SetSelectedColumn(dstIdx)
	m.uiState.EnsureColumnVisible(dstIdx)
	m.uiState.ClampSelection(len(m.appState.Columns()), len(newDst))
	return m.applyReconciliation(&drag.Reconciliation{Plan: plan})
}

// openDetail shows the selected card's full note in a scrollable overlay.
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	card := m.currentCard()
	if card == nil {
		return m, nil
	}

	width := min(m.uiState.Width()*2/3, 80)
	height := max(m.uiState.Height()*2/3, 5)
	m.detail = viewport.New(width, height)
	m.detail.SetContent(components.RenderDetail(components.DetailProps{
		Card:   card,
		Styles: m.styles,
		Width:  width,
	}))
	m.uiState.SetMode(state.DetailMode)
	return m, nil
}

func (m Model) handleDeleteConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		id := m.deleteTargetID
		m.deleteTargetID = ""
		m.uiState.SetMode(state.NormalMode)
		return m, m.deleteColumnCmd(id)
	case "n", "N", "esc":
		m.deleteTargetID = ""
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// ============================================================================
// FORMS
// ============================================================================

func (m Model) openColumnForm(mode state.Mode, renameID string) (tea.Model, tea.Cmd) {
	name := ""
	if renameID != "" {
		if col := m.currentColumn(); col != nil {
			name = col.Name
		}
	}
	m.formName = &name
	m.renameTargetID = renameID
	m.form = huhforms.ColumnNameForm(m.formName, mode == state.RenameColumnMode)
	m.uiState.SetMode(mode)
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		m.form = form
	}

	switch m.form.State {
	case huh.StateCompleted:
		mode := m.uiState.Mode()

		if mode == state.AddCardMode {
			noteID := ""
			if m.notePick != nil {
				noteID = *m.notePick
			}
			m.closeForm()
			target := m.columns.Default()
			if target == nil {
				target = m.appState.ColumnAt(0)
			}
			if noteID == "" || target == nil {
				return m, nil
			}
			return m, m.showCardCmd(noteID, target.ID)
		}

		name := ""
		if m.formName != nil {
			name = *m.formName
		}
		renameID := m.renameTargetID
		m.closeForm()
		if name == "" {
			return m, nil
		}
		if mode == state.RenameColumnMode {
			return m, m.renameColumnCmd(renameID, name)
		}
		return m, m.createColumnCmd(name)

	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}

	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.formName = nil
	m.notePick = nil
	m.renameTargetID = ""
	m.uiState.SetMode(state.NormalMode)
}
