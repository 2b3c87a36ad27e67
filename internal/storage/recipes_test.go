package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/model"
	"github.com/Veraticus/pantry-genius/internal/storage"
	"github.com/Veraticus/pantry-genius/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_CreateAndList(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	soup, err := store.CreateRecipe(ctx, testutil.Soup())
	require.NoError(t, err)
	assert.NotEmpty(t, soup.ID)

	salad, err := store.CreateRecipe(ctx, testutil.Salad())
	require.NoError(t, err)
	assert.NotEqual(t, soup.ID, salad.ID)

	recipes, err := store.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, *soup, recipes[0])
	assert.Equal(t, *salad, recipes[1])
	assert.Equal(t, []string{"carrot", "onion", "stock"}, recipes[0].Ingredients)
	assert.Equal(t, []string{"Toss"}, recipes[1].Instructions)
}

func TestSQLiteStorage_ListEmpty(t *testing.T) {
	store := testutil.SetupTestDB(t)

	recipes, err := store.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, recipes, "empty list encodes as [] not null")
	assert.Empty(t, recipes)
}

func TestSQLiteStorage_CreateRejectsInvalidDraft(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	_, err := store.CreateRecipe(ctx, model.Draft{Name: "Nothing"})
	assert.ErrorIs(t, err, model.ErrInvalidDraft)

	count, err := store.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSQLiteStorage_GetRecipe(t *testing.T) {
	store := testutil.SetupTestDB(t, testutil.Soup())
	ctx := context.Background()

	recipes, err := store.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	got, err := store.GetRecipe(ctx, recipes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", got.Name)

	_, err = store.GetRecipe(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = store.GetRecipe(ctx, " ")
	assert.ErrorIs(t, err, storage.ErrEmptyString)
}

func TestSQLiteStorage_CountRecipes(t *testing.T) {
	store := testutil.SetupTestDB(t, testutil.Soup(), testutil.Salad())

	count, err := store.CountRecipes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSQLiteStorage_MigrateIsIdempotent(t *testing.T) {
	store := testutil.SetupTestDB(t, testutil.Soup())
	require.NoError(t, store.Migrate(context.Background()))

	count, err := store.CountRecipes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteStorage_PersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "recipes.db")
	ctx := context.Background()

	store, err := storage.NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	_, err = store.CreateRecipe(ctx, testutil.Salad())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := storage.NewSQLiteStorage(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })
	require.NoError(t, reopened.Migrate(ctx))

	recipes, err := reopened.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Salad", recipes[0].Name)
	assert.Equal(t, path, reopened.Path())
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := storage.NewSQLiteStorage("  ")
	assert.ErrorIs(t, err, storage.ErrEmptyString)
}
