// Package testutil provides shared helpers for tests that need a recipe store.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/pantry-genius/internal/model"
	"github.com/Veraticus/pantry-genius/internal/storage"
)

// SetupTestDB creates a migrated in-memory store seeded with drafts, closed
// automatically when the test ends.
//
// Example:
//
//	store := testutil.SetupTestDB(t, testutil.Soup(), testutil.Salad())
func SetupTestDB(t *testing.T, seed ...model.Draft) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	for _, draft := range seed {
		if _, err := store.CreateRecipe(ctx, draft); err != nil {
			t.Fatalf("failed to seed recipe %q: %v", draft.Name, err)
		}
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
