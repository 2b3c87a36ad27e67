package match

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Veraticus/pantry-genius/internal/model"
	"github.com/Veraticus/pantry-genius/internal/pantry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	soup  = model.Recipe{Name: "Soup", Ingredients: []string{"carrot", "onion", "stock"}}
	salad = model.Recipe{Name: "Salad", Ingredients: []string{"lettuce", "tomato"}}
)

func pantryOf(items ...string) *pantry.State {
	p := pantry.New()
	for _, item := range items {
		p.Add(item)
	}
	return p
}

func names(recipes []model.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Name
	}
	return out
}

func TestFilterAndRank_Scenarios(t *testing.T) {
	catalog := []model.Recipe{soup, salad}

	tests := []struct {
		name   string
		pantry []string
		want   []string
		counts map[string]string
	}{
		{
			name:   "single match excludes the other recipe",
			pantry: []string{"tomato"},
			want:   []string{"Salad"},
			counts: map[string]string{"Salad": "1/2"},
		},
		{
			name:   "empty pantry shows everything in order",
			pantry: nil,
			want:   []string{"Soup", "Salad"},
			counts: map[string]string{"Soup": "0/3", "Salad": "0/2"},
		},
		{
			name:   "equal counts keep catalog order despite ratio",
			pantry: []string{"carrot", "tomato"},
			want:   []string{"Soup", "Salad"},
			counts: map[string]string{"Soup": "1/3", "Salad": "1/2"},
		},
		{
			name:   "no overlap yields nothing",
			pantry: []string{"chocolate"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pantryOf(tt.pantry...)
			assert.Equal(t, tt.want, names(FilterAndRank(catalog, p)))

			for _, m := range Rank(catalog, p) {
				got := fmt.Sprintf("%d/%d", m.Result.AvailableCount, m.Result.TotalCount)
				assert.Equal(t, tt.counts[m.Recipe.Name], got, m.Recipe.Name)
			}
		})
	}
}

func TestRank_OrdersByAvailableCount(t *testing.T) {
	catalog := []model.Recipe{
		{Name: "A", Ingredients: []string{"egg"}},
		{Name: "B", Ingredients: []string{"egg", "milk", "flour"}},
		{Name: "C", Ingredients: []string{"milk", "butter"}},
		{Name: "D", Ingredients: []string{"egg", "milk"}},
		{Name: "E", Ingredients: []string{"butter"}},
	}
	p := pantryOf("egg", "milk", "flour", "butter")

	assert.Equal(t, []string{"B", "C", "D", "A", "E"}, names(FilterAndRank(catalog, p)))
}

func TestRank_MatchesCanonically(t *testing.T) {
	catalog := []model.Recipe{{Name: "Pasta", Ingredients: []string{" Garlic", "OLIVE OIL", "pasta"}}}
	p := pantryOf("garlic", "Olive Oil")

	got := Rank(catalog, p)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Result.AvailableCount)
	assert.Equal(t, []IngredientStatus{
		{Name: " Garlic", Available: true},
		{Name: "OLIVE OIL", Available: true},
		{Name: "pasta", Available: false},
	}, got[0].Result.Ingredients)
}

func TestRank_ZeroIngredientRecipes(t *testing.T) {
	empty := model.Recipe{Name: "Air"}
	catalog := []model.Recipe{empty, salad}

	assert.Equal(t, []string{"Salad"}, names(FilterAndRank(catalog, pantryOf("tomato"))))
	assert.Equal(t, []string{"Air", "Salad"}, names(FilterAndRank(catalog, pantryOf())))

	res := Availability(empty, pantryOf("tomato"))
	assert.Equal(t, 0, res.AvailableCount)
	assert.Equal(t, 0, res.TotalCount)
}

func TestRank_DuplicateIngredientsCountTwice(t *testing.T) {
	r := model.Recipe{Name: "Double", Ingredients: []string{"egg", "Egg"}}
	res := Availability(r, pantryOf("egg"))
	assert.Equal(t, 2, res.AvailableCount)
	assert.Equal(t, 0, res.Missing())
}

func TestFilterAndRank_DoesNotMutateInput(t *testing.T) {
	catalog := []model.Recipe{salad, soup}
	FilterAndRank(catalog, pantryOf("carrot", "onion"))
	assert.Equal(t, []string{"Salad", "Soup"}, names(catalog))
}

// Randomized check of the subset and ordering guarantees.
func TestFilterAndRank_Properties(t *testing.T) {
	vocab := []string{"egg", "milk", "flour", "butter", "sugar", "salt", "rice", "beans"}
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		catalog := make([]model.Recipe, rng.Intn(8))
		for i := range catalog {
			ingredients := make([]string, rng.Intn(4))
			for j := range ingredients {
				ingredients[j] = vocab[rng.Intn(len(vocab))]
			}
			catalog[i] = model.Recipe{Name: fmt.Sprintf("r%d", i), Ingredients: ingredients}
		}
		var items []string
		for n := rng.Intn(4); n > 0; n-- {
			items = append(items, vocab[rng.Intn(len(vocab))])
		}
		p := pantryOf(items...)

		got := Rank(catalog, p)
		if p.IsEmpty() {
			assert.Equal(t, names(catalog), names(FilterAndRank(catalog, p)))
			continue
		}

		position := make(map[string]int, len(catalog))
		for i, r := range catalog {
			position[r.Name] = i
		}
		for i, m := range got {
			_, ok := position[m.Recipe.Name]
			require.True(t, ok, "result must come from the catalog")
			assert.Positive(t, m.Result.AvailableCount)
			if i == 0 {
				continue
			}
			prev := got[i-1]
			assert.GreaterOrEqual(t, prev.Result.AvailableCount, m.Result.AvailableCount)
			if prev.Result.AvailableCount == m.Result.AvailableCount {
				assert.Less(t, position[prev.Recipe.Name], position[m.Recipe.Name])
			}
		}
	}
}
