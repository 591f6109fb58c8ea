package database

import (
	"context"
	"testing"

	"tablero/internal/testutil"
)

func TestGetColumnsByUser_OrderedByPosition(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	testutil.CreateTestColumn(t, db, testutil.TestUser, "Done", 2, false)
	testutil.CreateTestColumn(t, db, testutil.TestUser, "Inbox", 0, true)
	testutil.CreateTestColumn(t, db, testutil.TestUser, "Follow Up", 1, false)
	testutil.CreateTestColumn(t, db, "someone-else", "Theirs", 0, true)

	repo := NewColumnRepository(db)
	columns, err := repo.GetColumnsByUser(context.Background(), testutil.TestUser)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(columns))
	}
	wantNames := []string{"Inbox", "Follow Up", "Done"}
	for i, col := range columns {
		if col.Name != wantNames[i] {
			t.Errorf("Expected %q at index %d, got %q", wantNames[i], i, col.Name)
		}
		if col.Position != i {
			t.Errorf("Expected position %d, got %d", i, col.Position)
		}
	}
	if !columns[0].IsDefault {
		t.Error("Expected Inbox to be the default column")
	}
}

func TestCreateColumn(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewColumnRepository(db)

	col, err := repo.CreateColumn(context.Background(), testutil.TestUser, "Waiting", 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if col.ID == "" {
		t.Error("Expected a storage-assigned id")
	}
	if col.IsDefault {
		t.Error("Expected created columns to never be default")
	}

	columns, err := repo.GetColumnsByUser(context.Background(), testutil.TestUser)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(columns) != 1 || columns[0].Name != "Waiting" {
		t.Errorf("Expected persisted column Waiting, got %+v", columns)
	}
}

func TestRenameColumn(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	id := testutil.CreateTestColumn(t, db, testutil.TestUser, "Inbox", 0, true)

	repo := NewColumnRepository(db)
	if err := repo.RenameColumn(context.Background(), id, "Triage"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	columns, _ := repo.GetColumnsByUser(context.Background(), testutil.TestUser)
	if columns[0].Name != "Triage" {
		t.Errorf("Expected renamed column, got %q", columns[0].Name)
	}
}

func TestRenameColumn_NotFound(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewColumnRepository(db)

	err := repo.RenameColumn(context.Background(), "missing", "Name")
	if err != ErrColumnNotFound {
		t.Errorf("Expected ErrColumnNotFound, got %v", err)
	}
}

func TestDeleteColumn_MigratesCardsToDefault(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	defaultID := testutil.CreateTestColumn(t, db, testutil.TestUser, "Inbox", 0, true)
	doomedID := testutil.CreateTestColumn(t, db, testutil.TestUser, "Follow Up", 1, false)
	testutil.CreateTestCard(t, db, testutil.TestUser, defaultID, "existing", 0)
	testutil.CreateTestCard(t, db, testutil.TestUser, doomedID, "x", 0)
	testutil.CreateTestCard(t, db, testutil.TestUser, doomedID, "y", 1)

	repo := NewColumnRepository(db)
	if err := repo.DeleteColumn(context.Background(), doomedID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cards, err := NewCardRepository(db).GetBoardCards(context.Background(), testutil.TestUser)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// All three cards now sit in the default column with dense positions,
	// the migrated pair appended in their original relative order.
	if len(cards) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(cards))
	}
	wantTitles := map[int]string{0: "existing", 1: "x", 2: "y"}
	for _, card := range cards {
		if card.ColumnID != defaultID {
			t.Errorf("Expected card %q migrated to default column, got %q", card.Title, card.ColumnID)
		}
		if wantTitles[card.Position] != card.Title {
			t.Errorf("Expected %q at position %d, got %q", wantTitles[card.Position], card.Position, card.Title)
		}
	}
}

func TestDeleteColumn_SurvivorsReindexedDense(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	testutil.CreateTestColumn(t, db, testutil.TestUser, "Inbox", 0, true)
	doomedID := testutil.CreateTestColumn(t, db, testutil.TestUser, "Follow Up", 1, false)
	testutil.CreateTestColumn(t, db, testutil.TestUser, "Done", 2, false)

	repo := NewColumnRepository(db)
	if err := repo.DeleteColumn(context.Background(), doomedID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	columns, err := repo.GetColumnsByUser(context.Background(), testutil.TestUser)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// The stored positions close the gap left by the deleted column.
	if len(columns) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(columns))
	}
	want := []string{"Inbox", "Done"}
	for i, col := range columns {
		if col.Name != want[i] || col.Position != i {
			t.Errorf("Expected %q at position %d, got %q at %d", want[i], i, col.Name, col.Position)
		}
	}
}

func TestDeleteColumn_DefaultRejected(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	defaultID := testutil.CreateTestColumn(t, db, testutil.TestUser, "Inbox", 0, true)

	repo := NewColumnRepository(db)
	err := repo.DeleteColumn(context.Background(), defaultID)
	if err != ErrDefaultColumn {
		t.Errorf("Expected ErrDefaultColumn, got %v", err)
	}

	columns, _ := repo.GetColumnsByUser(context.Background(), testutil.TestUser)
	if len(columns) != 1 {
		t.Error("Expected the default column to survive")
	}
}

func TestDeleteColumn_NotFound(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewColumnRepository(db)

	if err := repo.DeleteColumn(context.Background(), "missing"); err != ErrColumnNotFound {
		t.Errorf("Expected ErrColumnNotFound, got %v", err)
	}
}

func TestUpsertColumnOrder(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	testutil.CreateTestColumn(t, db, testutil.TestUser, "A", 0, true)
	testutil.CreateTestColumn(t, db, testutil.TestUser, "B", 1, false)
	testutil.CreateTestColumn(t, db, testutil.TestUser, "C", 2, false)

	repo := NewColumnRepository(db)
	ctx := context.Background()

	columns, err := repo.GetColumnsByUser(ctx, testutil.TestUser)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Rotate: C moves to the front.
	columns[0].Position = 1
	columns[1].Position = 2
	columns[2].Position = 0

	if err := repo.UpsertColumnOrder(ctx, columns); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	reloaded, err := repo.GetColumnsByUser(ctx, testutil.TestUser)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	wantNames := []string{"C", "A", "B"}
	for i, col := range reloaded {
		if col.Name != wantNames[i] {
			t.Errorf("Expected %q at index %d, got %q", wantNames[i], i, col.Name)
		}
	}
}
