package column

import (
	"context"
	"errors"
	"testing"

	"tablero/internal/database"
	"tablero/internal/models"
	"tablero/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// flakyColumnRepo wraps a real repository and fails selected operations, for
// exercising the rollback/resynchronize paths.
type flakyColumnRepo struct {
	database.ColumnRepository
	failUpsert bool
	failList   bool
}

var errBoom = errors.New("boom")

func (f *flakyColumnRepo) UpsertColumnOrder(ctx context.Context, columns []*models.Column) error {
	if f.failUpsert {
		return errBoom
	}
	return f.ColumnRepository.UpsertColumnOrder(ctx, columns)
}

func (f *flakyColumnRepo) GetColumnsByUser(ctx context.Context, userID string) ([]*models.Column, error) {
	if f.failList {
		return nil, errBoom
	}
	return f.ColumnRepository.GetColumnsByUser(ctx, userID)
}

func setupService(t *testing.T) (*Service, *flakyColumnRepo) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	testutil.CreateTestColumn(t, db, testutil.TestUser, "Inbox", 0, true)
	testutil.CreateTestColumn(t, db, testutil.TestUser, "Follow Up", 1, false)
	testutil.CreateTestColumn(t, db, testutil.TestUser, "Done", 2, false)

	repo := &flakyColumnRepo{ColumnRepository: database.NewColumnRepository(db)}
	svc := NewService(repo, testutil.TestUser)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load columns: %v", err)
	}
	return svc, repo
}

func names(columns []*models.Column) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = col.Name
	}
	return out
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestLoad_FailureKeepsPreviousCache(t *testing.T) {
	t.Parallel()

	svc, repo := setupService(t)

	repo.failList = true
	_, err := svc.Load(context.Background())

	var fetchErr *models.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected FetchError, got %v", err)
	}
	if len(svc.Columns()) != 3 {
		t.Error("Expected cache to keep the last good state")
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)

	created, err := svc.Create(context.Background(), "Waiting")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Appended at max(position)+1, never default.
	if created.Position != 3 {
		t.Errorf("Expected position 3, got %d", created.Position)
	}
	if created.IsDefault {
		t.Error("Expected created column to not be default")
	}
	if len(svc.Columns()) != 4 {
		t.Errorf("Expected 4 cached columns, got %d", len(svc.Columns()))
	}
}

func TestCreate_FirstColumnGetsPositionZero(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewColumnRepository(db), testutil.TestUser)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load columns: %v", err)
	}

	created, err := svc.Create(context.Background(), "First")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.Position != 0 {
		t.Errorf("Expected position 0, got %d", created.Position)
	}
}

func TestCreate_EmptyName(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)

	if _, err := svc.Create(context.Background(), ""); err != ErrEmptyName {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if len(svc.Columns()) != 3 {
		t.Error("Expected no cache mutation on validation failure")
	}
}

func TestCreate_NameTooLong(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)

	longName := ""
	for i := 0; i < 51; i++ {
		longName += "a"
	}

	if _, err := svc.Create(context.Background(), longName); err != ErrNameTooLong {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestRename(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	target := svc.Columns()[1]

	if err := svc.Rename(context.Background(), target.ID, "Waiting"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if svc.Columns()[1].Name != "Waiting" {
		t.Errorf("Expected cache to reflect rename, got %q", svc.Columns()[1].Name)
	}
}

func TestRename_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	target := svc.Columns()[0]

	if err := svc.Rename(context.Background(), "", "Name"); err != ErrInvalidID {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}
	if err := svc.Rename(context.Background(), target.ID, ""); err != ErrEmptyName {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if err := svc.Rename(context.Background(), "missing", "Name"); err != ErrColumnNotFound {
		t.Errorf("Expected ErrColumnNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	target := svc.Columns()[1] // "Follow Up"

	if err := svc.Delete(context.Background(), target.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	remaining := svc.Columns()
	if len(remaining) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(remaining))
	}
	// Cache reindexed densely after the removal.
	for i, col := range remaining {
		if col.Position != i {
			t.Errorf("Expected position %d for %q, got %d", i, col.Name, col.Position)
		}
	}
}

func TestDelete_ThenCreateGetsUnusedPosition(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	target := svc.Columns()[1] // "Follow Up"

	if err := svc.Delete(context.Background(), target.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	created, err := svc.Create(context.Background(), "New")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.Position != 2 {
		t.Errorf("Expected position 2, got %d", created.Position)
	}

	// The stored positions must be dense with no duplicates, including the
	// column that survived the delete.
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Failed to reload: %v", err)
	}
	seen := make(map[int]string)
	for i, col := range svc.Columns() {
		if col.Position != i {
			t.Errorf("Expected dense position %d for %q, got %d", i, col.Name, col.Position)
		}
		if holder, dup := seen[col.Position]; dup {
			t.Errorf("Duplicate stored position %d held by %q and %q", col.Position, holder, col.Name)
		}
		seen[col.Position] = col.Name
	}
}

func TestDelete_DefaultAlwaysRejected(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)

	var defaultID string
	for _, col := range svc.Columns() {
		if col.IsDefault {
			defaultID = col.ID
		}
	}

	if err := svc.Delete(context.Background(), defaultID); err != ErrDefaultColumn {
		t.Errorf("Expected ErrDefaultColumn, got %v", err)
	}
	if len(svc.Columns()) != 3 {
		t.Error("Expected no cache mutation on rejected delete")
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)

	if err := svc.Delete(context.Background(), "missing"); err != ErrColumnNotFound {
		t.Errorf("Expected ErrColumnNotFound, got %v", err)
	}
}

func TestReorder(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	columns := svc.Columns()

	// Move Done to the front.
	reordered := []*models.Column{columns[2], columns[0], columns[1]}

	if err := svc.Reorder(context.Background(), reordered); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cached := svc.Columns()
	want := []string{"Done", "Inbox", "Follow Up"}
	for i, name := range want {
		if cached[i].Name != name {
			t.Errorf("Expected %q at index %d, got %v", name, i, names(cached))
		}
		if cached[i].Position != i {
			t.Errorf("Expected dense position %d, got %d", i, cached[i].Position)
		}
	}

	// The persisted order matches after a fresh load.
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Failed to reload: %v", err)
	}
	for i, name := range want {
		if svc.Columns()[i].Name != name {
			t.Errorf("Expected persisted %q at index %d, got %v", name, i, names(svc.Columns()))
		}
	}
}

func TestReorder_MustCoverEveryColumn(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t)
	columns := svc.Columns()

	err := svc.Reorder(context.Background(), columns[:2])
	if err != ErrIncompleteReorder {
		t.Errorf("Expected ErrIncompleteReorder, got %v", err)
	}
	if len(svc.Columns()) != 3 {
		t.Error("Expected cache untouched by rejected reorder")
	}
}

func TestReorder_FailureDiscardsOptimisticState(t *testing.T) {
	t.Parallel()

	svc, repo := setupService(t)
	columns := svc.Columns()
	reordered := []*models.Column{columns[2], columns[0], columns[1]}

	repo.failUpsert = true
	err := svc.Reorder(context.Background(), reordered)

	var persistErr *models.PersistenceError
	if !errors.As(err, &persistErr) {
		t.Fatalf("Expected PersistenceError, got %v", err)
	}

	// Cache resynchronized to the authoritative (unchanged) order.
	want := []string{"Inbox", "Follow Up", "Done"}
	for i, name := range want {
		if svc.Columns()[i].Name != name {
			t.Errorf("Expected authoritative %q at index %d, got %v", name, i, names(svc.Columns()))
		}
	}
}
