package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/config"
	"github.com/Veraticus/pantry-genius/internal/model"
	"github.com/Veraticus/pantry-genius/internal/service"
	"github.com/Veraticus/pantry-genius/internal/service/servicetest"
	"github.com/Veraticus/pantry-genius/internal/testutil"
)

func catalogFixture() []model.Recipe {
	return []model.Recipe{
		{ID: "1", Name: "Tomato Soup", Ingredients: []string{"tomato", "onion", "stock"}, Instructions: []string{"Chop", "Simmer"}},
		{ID: "2", Name: "Salad", Ingredients: []string{"lettuce", "tomato"}, Instructions: []string{"Toss"}},
		{ID: "3", Name: "Omelette", Ingredients: []string{"egg", "cheese"}, Instructions: []string{"Whisk", "Cook"}},
	}
}

// useFakeService routes every command to fake for the duration of the test.
func useFakeService(t *testing.T, fake *servicetest.FakeRecipeService) {
	t.Helper()
	original := newRecipeService
	newRecipeService = func(*config.Config) (service.RecipeService, error) {
		return fake, nil
	}
	t.Cleanup(func() { newRecipeService = original })
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFindCommand(t *testing.T) {
	useFakeService(t, &servicetest.FakeRecipeService{Recipes: catalogFixture()})

	out, err := execute(t, findCmd(), "", "--have", "Tomato, lettuce")
	require.NoError(t, err)

	assert.Contains(t, out, "Pantry: tomato, lettuce")
	salad := strings.Index(out, "Salad")
	soup := strings.Index(out, "Tomato Soup")
	require.NotEqual(t, -1, salad)
	require.NotEqual(t, -1, soup)
	assert.Less(t, salad, soup, "Salad has both ingredients and ranks first")
	assert.Contains(t, out, "You have: 2/2")
	assert.Contains(t, out, "You have: 1/3")
	assert.NotContains(t, out, "Omelette")
}

func TestFindCommand_EmptyPantryListsAll(t *testing.T) {
	useFakeService(t, &servicetest.FakeRecipeService{Recipes: catalogFixture()})

	out, err := execute(t, findCmd(), "")
	require.NoError(t, err)
	for _, r := range catalogFixture() {
		assert.Contains(t, out, r.Name)
	}
}

func TestFindCommand_NoMatches(t *testing.T) {
	useFakeService(t, &servicetest.FakeRecipeService{Recipes: catalogFixture()})

	out, err := execute(t, findCmd(), "", "--have", "saffron")
	require.NoError(t, err)
	assert.Contains(t, out, common.MsgNoRecipes)
}

func TestFindCommand_FetchFailure(t *testing.T) {
	useFakeService(t, &servicetest.FakeRecipeService{FetchErr: errors.New("connection refused")})

	out, err := execute(t, findCmd(), "", "--have", "egg")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNetwork)
	assert.Contains(t, out, common.MsgFetchFailed)
}

func TestShowCommand(t *testing.T) {
	useFakeService(t, &servicetest.FakeRecipeService{Recipes: catalogFixture()})

	out, err := execute(t, showCmd(), "", "omelette", "--have", "egg")
	require.NoError(t, err)
	assert.Contains(t, out, "Omelette")
	assert.Contains(t, out, "You have: 1/2")
	assert.Contains(t, out, "1. Whisk")
	assert.Contains(t, out, model.PlaceholderImageURL)
}

func TestShowCommand_NotFound(t *testing.T) {
	useFakeService(t, &servicetest.FakeRecipeService{Recipes: catalogFixture()})

	_, err := execute(t, showCmd(), "", "pizza")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFindByName(t *testing.T) {
	recipes := catalogFixture()

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{name: "exact ignoring case", query: "SALAD", want: "Salad"},
		{name: "unique substring", query: "soup", want: "Tomato Soup"},
		{name: "ambiguous substring", query: "o", wantErr: true},
		{name: "missing", query: "pizza", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findByName(recipes, tt.query)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestAddCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		stdin       string
		wantErr     bool
		wantOutput  string
		wantCreated *model.Draft
	}{
		{
			name: "flags",
			args: []string{"--name", "Toast", "--ingredients", "Bread, butter", "--step", "Toast", "--step", "Butter"},
			wantCreated: &model.Draft{
				Name:         "Toast",
				Ingredients:  []string{"bread", "butter"},
				Instructions: []string{"Toast", "Butter"},
			},
			wantOutput: common.MsgRecipeAdded,
		},
		{
			name:       "missing ingredients",
			args:       []string{"--name", "Toast", "--instructions", "Toast"},
			wantErr:    true,
			wantOutput: common.MsgIncompleteForm,
		},
		{
			name:  "interactive",
			stdin: "Tea\nwater, tea\nBoil water\nSteep\n\n",
			wantCreated: &model.Draft{
				Name:         "Tea",
				Ingredients:  []string{"water", "tea"},
				Instructions: []string{"Boil water", "Steep"},
			},
			wantOutput: common.MsgRecipeAdded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &servicetest.FakeRecipeService{}
			useFakeService(t, fake)

			out, err := execute(t, addCmd(), tt.stdin, tt.args...)
			assert.Contains(t, out, tt.wantOutput)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidDraft)
				assert.Zero(t, fake.CreateCalls)
				return
			}
			require.NoError(t, err)
			require.Len(t, fake.Created, 1)
			assert.Equal(t, *tt.wantCreated, fake.Created[0])
		})
	}
}

func TestAddCommand_InstructionsFile(t *testing.T) {
	fake := &servicetest.FakeRecipeService{}
	useFakeService(t, fake)

	path := filepath.Join(t.TempDir(), "steps.txt")
	require.NoError(t, os.WriteFile(path, []byte("Mix\n\n  Fry \n"), 0600))

	_, err := execute(t, addCmd(), "", "--name", "Pancakes", "--ingredients", "flour,egg", "--instructions-file", path)
	require.NoError(t, err)
	require.Len(t, fake.Created, 1)
	assert.Equal(t, []string{"Mix", "Fry"}, fake.Created[0].Instructions)
}

func TestAddCommand_ServiceFailure(t *testing.T) {
	useFakeService(t, &servicetest.FakeRecipeService{CreateErr: errors.New("500")})

	out, err := execute(t, addCmd(), "", "--name", "Toast", "--ingredients", "bread", "--instructions", "Toast")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNetwork)
	assert.Contains(t, out, common.MsgSubmitFailed)
}

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.csv")
	content := "name,ingredients,instructions\n" +
		"Toast,\"bread, butter\",Toast\n" +
		"Broken,,Stir\n" +
		"Tea,water,Steep\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestImportCommand(t *testing.T) {
	fake := &servicetest.FakeRecipeService{}
	useFakeService(t, fake)

	out, err := execute(t, importCmd(), "", writeCSV(t))
	require.NoError(t, err)

	assert.Equal(t, 2, fake.CreateCalls)
	assert.Contains(t, out, "Skipped row 3 (Broken)")
	assert.Contains(t, out, "Submitted 2, failed 0, skipped 1")
}

func TestImportCommand_DryRun(t *testing.T) {
	fake := &servicetest.FakeRecipeService{}
	useFakeService(t, fake)

	out, err := execute(t, importCmd(), "", writeCSV(t), "--dry-run")
	require.NoError(t, err)
	assert.Zero(t, fake.CreateCalls)
	assert.Contains(t, out, "Dry run: 2 valid, 1 skipped")
}

func TestImportCommand_Failures(t *testing.T) {
	fake := &servicetest.FakeRecipeService{CreateErr: errors.New("503")}
	useFakeService(t, fake)

	out, err := execute(t, importCmd(), "", writeCSV(t))
	require.Error(t, err)
	assert.Equal(t, 2, fake.CreateCalls, "failures are not retried")
	assert.Contains(t, out, "Submitted 0, failed 2, skipped 1")
}

func TestImportCommand_UnsupportedFormat(t *testing.T) {
	useFakeService(t, &servicetest.FakeRecipeService{})

	_, err := execute(t, importCmd(), "", "recipes.txt")
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestSeedStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	seed := `
- name: Tea
  ingredients: [water, tea]
  instructions: [Steep]
- name: Toast
  ingredients: bread
  instructions: Toast
`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0600))

	t.Run("fills empty store", func(t *testing.T) {
		store := testutil.SetupTestDB(t)
		require.NoError(t, seedStore(ctx, store, path))

		count, err := store.CountRecipes(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("leaves populated store alone", func(t *testing.T) {
		store := testutil.SetupTestDB(t, testutil.Soup())
		require.NoError(t, seedStore(ctx, store, path))

		count, err := store.CountRecipes(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, versionCmd(), "")
	require.NoError(t, err)
	assert.Equal(t, "pantry dev\n", out)
}
