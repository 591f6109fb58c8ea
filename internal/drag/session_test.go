package drag

import (
	"testing"

	"tablero/internal/models"
)

func boardFixture() ([]*models.Column, map[string][]*models.Card) {
	columns := []*models.Column{
		{ID: "col-a", UserID: "tester", Name: "Inbox", Position: 0, IsDefault: true},
		{ID: "col-b", UserID: "tester", Name: "Follow Up", Position: 1},
	}
	cards := map[string][]*models.Card{
		"col-a": {
			{ID: "card1", ColumnID: "col-a", Position: 0},
			{ID: "card2", ColumnID: "col-a", Position: 1},
		},
		"col-b": {
			{ID: "card3", ColumnID: "col-b", Position: 0},
		},
	}
	return columns, cards
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	s := NewSession()

	if s.Active() {
		t.Fatal("Expected new session to be idle")
	}

	s.StartCard("card1", "col-a", 0)
	if !s.Active() || s.Kind() != KindCard || s.ItemID() != "card1" {
		t.Fatalf("Expected active card drag for card1, got active=%v kind=%v item=%q", s.Active(), s.Kind(), s.ItemID())
	}

	s.Cancel()
	if s.Active() || s.ItemID() != "" {
		t.Error("Expected cancel to return session to idle")
	}
}

func TestSessionMove_UpdatesAdvisoryTarget(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.StartCard("card1", "col-a", 0)

	if s.Over() != nil {
		t.Fatal("Expected no target before the pointer moved")
	}

	s.Move(Point{X: 40, Y: 3}, testLayout())

	over := s.Over()
	if over == nil {
		t.Fatal("Expected a target after moving over column b")
	}
	if over.ColumnID != "col-b" || over.Index != 0 {
		t.Errorf("Expected target {col-b 0}, got {%s %d}", over.ColumnID, over.Index)
	}
}

func TestDrop_NoTargetIsCancel(t *testing.T) {
	t.Parallel()

	columns, cards := boardFixture()
	s := NewSession()
	s.StartCard("card1", "col-a", 0)

	// Pointer never moved over a valid target.
	if rec := s.Drop(columns, cards); rec != nil {
		t.Errorf("Expected nil reconciliation, got %+v", rec)
	}
	if s.Active() {
		t.Error("Expected session to be idle after drop")
	}
}

func TestDrop_CardSameColumnSameIndexIsNoOp(t *testing.T) {
	t.Parallel()

	columns, cards := boardFixture()
	s := NewSession()
	s.StartCard("card1", "col-a", 0)
	s.Move(Point{X: 5, Y: 3}, testLayout()) // back onto its own slot

	if rec := s.Drop(columns, cards); rec != nil {
		t.Errorf("Expected no write for a pick-up-and-put-back, got %+v", rec)
	}
}

func TestDrop_CardWithinColumn(t *testing.T) {
	t.Parallel()

	columns, cards := boardFixture()
	s := NewSession()
	s.StartCard("card1", "col-a", 0)
	s.Move(Point{X: 5, Y: 7}, testLayout()) // over card2's slot

	rec := s.Drop(columns, cards)
	if rec == nil || rec.Plan == nil {
		t.Fatal("Expected a placement plan")
	}
	if rec.Columns != nil {
		t.Error("Expected no column reorder for a card drag")
	}

	// Plan covers only col-a's cards, reindexed after the swap.
	want := map[string]int{"card2": 0, "card1": 1}
	if len(rec.Plan) != 2 {
		t.Fatalf("Expected 2 placements, got %d", len(rec.Plan))
	}
	for _, p := range rec.Plan {
		if p.ColumnID != "col-a" {
			t.Errorf("Expected placements limited to col-a, got %+v", p)
		}
		if want[p.CardID] != p.Position {
			t.Errorf("Expected %s at position %d, got %d", p.CardID, want[p.CardID], p.Position)
		}
	}
}

func TestDrop_CardAcrossColumns(t *testing.T) {
	t.Parallel()

	// Card 3 starts alone in column b and is dropped at the top of column a:
	// the plan covers the union of both columns' cards.
	columns, cards := boardFixture()
	s := NewSession()
	s.StartCard("card3", "col-b", 0)
	s.Move(Point{X: 5, Y: 3}, testLayout())

	rec := s.Drop(columns, cards)
	if rec == nil || rec.Plan == nil {
		t.Fatal("Expected a placement plan")
	}

	want := map[string]Target{
		"card3": {ColumnID: "col-a", Index: 0},
		"card1": {ColumnID: "col-a", Index: 1},
		"card2": {ColumnID: "col-a", Index: 2},
	}
	if len(rec.Plan) != 3 {
		t.Fatalf("Expected 3 placements (emptied source column contributes none), got %d", len(rec.Plan))
	}
	for _, p := range rec.Plan {
		w := want[p.CardID]
		if p.ColumnID != w.ColumnID || p.Position != w.Index {
			t.Errorf("Expected %s at {%s %d}, got {%s %d}", p.CardID, w.ColumnID, w.Index, p.ColumnID, p.Position)
		}
	}
}

func TestDrop_SingleCardToDefaultColumn(t *testing.T) {
	t.Parallel()

	// Columns A (default) and B; B's only card dragged to A at index 0 while
	// A is empty: exactly one placement, the emptied column needs no entries.
	columns := []*models.Column{
		{ID: "A", Name: "Inbox", Position: 0, IsDefault: true},
		{ID: "B", Name: "Follow Up", Position: 1},
	}
	cards := map[string][]*models.Card{
		"A": {},
		"B": {{ID: "1", ColumnID: "B", Position: 0}},
	}

	layout := &Layout{
		Columns: []ColumnRect{
			{ID: "A", Bounds: Rect{X: 0, Y: 1, Width: 28, Height: 20}},
			{ID: "B", Bounds: Rect{X: 30, Y: 1, Width: 28, Height: 20}, Cards: []CardRect{
				{ID: "1", Bounds: Rect{X: 31, Y: 2, Width: 26, Height: 4}},
			}},
		},
	}

	s := NewSession()
	s.StartCard("1", "B", 0)
	s.Move(Point{X: 5, Y: 3}, layout)

	rec := s.Drop(columns, cards)
	if rec == nil {
		t.Fatal("Expected a reconciliation")
	}
	if len(rec.Plan) != 1 {
		t.Fatalf("Expected exactly one placement, got %d", len(rec.Plan))
	}
	got := rec.Plan[0]
	if got.CardID != "1" || got.ColumnID != "A" || got.Position != 0 {
		t.Errorf("Expected {1 A 0}, got {%s %s %d}", got.CardID, got.ColumnID, got.Position)
	}
}

func TestDrop_ColumnReorder(t *testing.T) {
	t.Parallel()

	columns := []*models.Column{
		{ID: "A", Name: "A", Position: 0, IsDefault: true},
		{ID: "B", Name: "B", Position: 1},
		{ID: "C", Name: "C", Position: 2},
	}

	layout := &Layout{
		Columns: []ColumnRect{
			{ID: "A", Bounds: Rect{X: 0, Y: 1, Width: 28, Height: 20}},
			{ID: "B", Bounds: Rect{X: 30, Y: 1, Width: 28, Height: 20}},
			{ID: "C", Bounds: Rect{X: 60, Y: 1, Width: 28, Height: 20}},
		},
	}

	s := NewSession()
	s.StartColumn("C", 2)
	s.Move(Point{X: 5, Y: 5}, layout) // over column A's slot

	rec := s.Drop(columns, nil)
	if rec == nil || rec.Columns == nil {
		t.Fatal("Expected a column reorder")
	}
	if rec.Plan != nil {
		t.Error("Expected no placement plan for a column drag")
	}

	wantOrder := []string{"C", "A", "B"}
	for i, col := range rec.Columns {
		if col.ID != wantOrder[i] {
			t.Errorf("Expected column %s at index %d, got %s", wantOrder[i], i, col.ID)
		}
		if col.Position != i {
			t.Errorf("Expected dense position %d for %s, got %d", i, col.ID, col.Position)
		}
	}
}

func TestDrop_ColumnSamePositionIsNoOp(t *testing.T) {
	t.Parallel()

	columns := []*models.Column{
		{ID: "A", Name: "A", Position: 0, IsDefault: true},
		{ID: "B", Name: "B", Position: 1},
	}

	layout := &Layout{
		Columns: []ColumnRect{
			{ID: "A", Bounds: Rect{X: 0, Y: 1, Width: 28, Height: 20}},
			{ID: "B", Bounds: Rect{X: 30, Y: 1, Width: 28, Height: 20}},
		},
	}

	s := NewSession()
	s.StartColumn("B", 1)
	s.Move(Point{X: 35, Y: 5}, layout) // dropped back onto itself

	if rec := s.Drop(columns, nil); rec != nil {
		t.Errorf("Expected nil reconciliation, got %+v", rec)
	}
}
