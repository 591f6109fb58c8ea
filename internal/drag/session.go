// Package drag implements the drag gesture state machine for the board: it
// tracks the item being dragged, resolves the live pointer position to a
// provisional drop target, and on release produces the reconciliation the
// stores persist. The session performs no I/O and never touches store state;
// it is owned by the board view rather than living in a package global, so
// independent boards cannot interfere.
package drag

import (
	"tablero/internal/board"
	"tablero/internal/models"
)

// Kind discriminates what is being dragged.
type Kind int

const (
	KindColumn Kind = iota
	KindCard
)

// Target is the provisional drop slot derived from the pointer. For card
// drags Index addresses a slot in the target column's list; for column drags
// it addresses a slot in the column row.
type Target struct {
	ColumnID string
	Index    int
}

// Reconciliation is the output of a completed drag. Exactly one of the two
// fields is set: Columns carries the full reordered column list for a column
// drag, Plan carries the placement assignments for a card drag. A nil
// reconciliation means the gesture required no write.
type Reconciliation struct {
	Columns []*models.Column
	Plan    board.PlacementPlan
}

// Session is the transient drag state machine: idle until Start, dragging
// until Drop or Cancel. It exists only in memory for the duration of one
// gesture.
type Session struct {
	active     bool
	kind       Kind
	itemID     string
	fromColumn string // source column ID for card drags
	fromIndex  int
	over       *Target
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{}
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool { return s.active }

// Kind returns what is being dragged. Meaningless while idle.
func (s *Session) Kind() Kind { return s.kind }

// ItemID returns the identity of the dragged item. Empty while idle.
func (s *Session) ItemID() string {
	if !s.active {
		return ""
	}
	return s.itemID
}

// Over returns the current advisory drop target, or nil when the pointer has
// not resolved to a valid slot. It drives visual feedback only.
func (s *Session) Over() *Target {
	if s.over == nil {
		return nil
	}
	t := *s.over
	return &t
}

// StartColumn begins a column drag.
func (s *Session) StartColumn(columnID string, index int) {
	s.active = true
	s.kind = KindColumn
	s.itemID = columnID
	s.fromColumn = columnID
	s.fromIndex = index
	s.over = nil
}

// StartCard begins a card drag from the given column and slot.
func (s *Session) StartCard(cardID, columnID string, index int) {
	s.active = true
	s.kind = KindCard
	s.itemID = cardID
	s.fromColumn = columnID
	s.fromIndex = index
	s.over = nil
}

// Move recomputes the provisional target from the pointer position. It is
// advisory only: no persisted or optimistic state changes until Drop.
func (s *Session) Move(p Point, layout *Layout) {
	if !s.active || layout == nil {
		return
	}

	probe := pointProbe(p)

	switch s.kind {
	case KindColumn:
		ci := layout.ClosestColumnIndex(probe)
		if ci == -1 {
			s.over = nil
			return
		}
		s.over = &Target{ColumnID: layout.Columns[ci].ID, Index: ci}
	case KindCard:
		target, ok := layout.cardTarget(probe)
		if !ok {
			s.over = nil
			return
		}
		s.over = &target
	}
}

// Cancel abandons the gesture without producing output.
func (s *Session) Cancel() {
	*s = Session{}
}

// Drop ends the gesture and computes the final reconciliation against the
// current board state. A drop with no valid target is a cancel: an ambiguous
// gesture must never corrupt stored order. Dropping an item back onto its
// original slot produces nil, avoiding a wasted write.
func (s *Session) Drop(columns []*models.Column, cards map[string][]*models.Card) *Reconciliation {
	if !s.active {
		return nil
	}
	over := s.over
	kind, itemID, fromColumn, fromIndex := s.kind, s.itemID, s.fromColumn, s.fromIndex
	*s = Session{}

	if over == nil {
		return nil
	}

	switch kind {
	case KindColumn:
		from := -1
		for i, col := range columns {
			if col.ID == itemID {
				from = i
				break
			}
		}
		if from == -1 || from == over.Index {
			return nil
		}
		return &Reconciliation{Columns: board.MoveColumn(columns, from, over.Index)}

	case KindCard:
		if over.ColumnID == fromColumn {
			if over.Index == fromIndex {
				return nil
			}
			moved := board.MoveCard(cards[fromColumn], fromIndex, over.Index)
			return &Reconciliation{Plan: board.PlanForColumn(fromColumn, moved)}
		}

		// Cross-column: every card in both columns may have shifted, so the
		// plan covers the union of the two lists.
		newSrc, newDst := board.Relocate(cards[fromColumn], cards[over.ColumnID], itemID, over.Index)
		plan := board.PlanForColumn(fromColumn, newSrc)
		plan = append(plan, board.PlanForColumn(over.ColumnID, newDst)...)
		return &Reconciliation{Plan: plan}
	}

	return nil
}
