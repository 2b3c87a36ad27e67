package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/model"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "recipes.json", want: FormatJSON},
		{path: "recipes.JSONC", want: FormatJSON},
		{path: "recipes.yml", want: FormatYAML},
		{path: "recipes.yaml", want: FormatYAML},
		{path: "book.xlsx", want: FormatXLSX},
		{path: "export.csv", want: FormatCSV},
		{path: "page.htm", want: FormatHTML},
		{path: "notes.txt", wantErr: true},
		{path: "noext", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_JSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name: "array with comments",
			input: `[
				// breakfast
				{"name": "Toast", "ingredients": ["Bread", "butter"], "instructions": ["Toast", "Butter"]},
			]`,
		},
		{
			name:  "envelope with string fields",
			input: `{"recipes": [{"name": "Toast", "ingredients": "Bread, butter", "instructions": "Toast\nButter"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(strings.NewReader(tt.input), FormatJSON)
			require.NoError(t, err)
			require.Len(t, result.Drafts, 1)
			assert.Empty(t, result.Skipped)
			assert.Equal(t, model.Draft{
				Name:         "Toast",
				Ingredients:  []string{"bread", "butter"},
				Instructions: []string{"Toast", "Butter"},
			}, result.Drafts[0])
		})
	}
}

func TestParse_JSONMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"recipes": [`), FormatJSON)
	assert.Error(t, err)
}

func TestParse_YAML(t *testing.T) {
	input := `
recipes:
  - name: Omelette
    ingredients: [Eggs, cheese]
    instructions:
      - Whisk
      - Cook
  - name: ""
    ingredients: salt
    instructions: Season
`
	result, err := Parse(strings.NewReader(input), FormatYAML)
	require.NoError(t, err)

	require.Len(t, result.Drafts, 1)
	assert.Equal(t, "Omelette", result.Drafts[0].Name)
	assert.Equal(t, []string{"eggs", "cheese"}, result.Drafts[0].Ingredients)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 2, result.Skipped[0].Row)
	assert.ErrorIs(t, result.Skipped[0], model.ErrInvalidDraft)
}

func TestParse_YAMLSequence(t *testing.T) {
	input := `
- name: Tea
  ingredients: water, tea
  instructions: |
    Boil water
    Steep
`
	result, err := Parse(strings.NewReader(input), FormatYAML)
	require.NoError(t, err)
	require.Len(t, result.Drafts, 1)
	assert.Equal(t, []string{"water", "tea"}, result.Drafts[0].Ingredients)
	assert.Equal(t, []string{"Boil water", "Steep"}, result.Drafts[0].Instructions)
}

func TestParse_YAMLEmpty(t *testing.T) {
	result, err := Parse(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, result.Drafts)
}

func TestParse_CSV(t *testing.T) {
	input := "name,ingredients,instructions\n" +
		"Salad,\"lettuce, tomato\",Toss\n" +
		",,\n" +
		"Soup,\"carrot, onion\",\"Chop\nSimmer\"\n" +
		"Broken,,Stir\n"

	result, err := Parse(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)

	require.Len(t, result.Drafts, 2)
	assert.Equal(t, "Salad", result.Drafts[0].Name)
	assert.Equal(t, []string{"lettuce", "tomato"}, result.Drafts[0].Ingredients)
	assert.Equal(t, []string{"Chop", "Simmer"}, result.Drafts[1].Instructions)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "Broken", result.Skipped[0].Name)
	assert.Contains(t, result.Skipped[0].Error(), "ingredients")
}

func TestParse_HTML(t *testing.T) {
	input := `<html><body>
<table>
  <tr><th>Name</th><th>Ingredients</th><th>Instructions</th></tr>
  <tr>
    <td>Pancakes</td>
    <td>Flour, Egg, Milk</td>
    <td><ol><li>Mix</li><li>Fry</li></ol></td>
  </tr>
</table>
<table><tr><td>Ignored</td><td>x</td><td>y</td></tr></table>
</body></html>`

	result, err := Parse(strings.NewReader(input), FormatHTML)
	require.NoError(t, err)
	require.Len(t, result.Drafts, 1)
	assert.Equal(t, model.Draft{
		Name:         "Pancakes",
		Ingredients:  []string{"flour", "egg", "milk"},
		Instructions: []string{"Mix", "Fry"},
	}, result.Drafts[0])
}

func TestParse_HTMLIngredientList(t *testing.T) {
	input := `<table>
  <tr>
    <td>Pancakes</td>
    <td><ul><li>Flour</li><li>Egg, Milk</li></ul></td>
    <td>Mix then fry</td>
  </tr>
</table>`

	result, err := Parse(strings.NewReader(input), FormatHTML)
	require.NoError(t, err)
	require.Len(t, result.Drafts, 1)
	assert.Equal(t, []string{"flour", "egg", "milk"}, result.Drafts[0].Ingredients)
	assert.Equal(t, []string{"Mix then fry"}, result.Drafts[0].Instructions)
}

func TestParse_CSVMultilineIngredients(t *testing.T) {
	input := "name,ingredients,instructions\n" +
		"Toast,\"Bread\nButter\",\"Toast\nButter\"\n"

	result, err := Parse(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)
	require.Len(t, result.Drafts, 1)
	assert.Equal(t, []string{"bread", "butter"}, result.Drafts[0].Ingredients)
	assert.Equal(t, []string{"Toast", "Butter"}, result.Drafts[0].Instructions)
}

func TestParse_HTMLWithoutTable(t *testing.T) {
	_, err := Parse(strings.NewReader("<p>nothing here</p>"), FormatHTML)
	assert.Error(t, err)
}

func TestParse_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Name", "Ingredients", "Instructions"},
		{"Chili", "Beans, Tomato, chili", "Brown\nSimmer"},
		{"Nothing", "", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	result, err := Parse(&buf, FormatXLSX)
	require.NoError(t, err)
	require.Len(t, result.Drafts, 1)
	assert.Equal(t, []string{"beans", "tomato", "chili"}, result.Drafts[0].Ingredients)
	assert.Equal(t, []string{"Brown", "Simmer"}, result.Drafts[0].Instructions)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 3, result.Skipped[0].Row)
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse(strings.NewReader(""), Format("toml"))
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipes.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Tea","ingredients":["water"],"instructions":["Steep"]}]`), 0600))

	result, err := Load(path)
	require.NoError(t, err)
	require.Len(t, result.Drafts, 1)
	assert.Equal(t, "Tea", result.Drafts[0].Name)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "recipes.txt"))
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}
