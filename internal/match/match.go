// Package match ranks recipes against a pantry.
//
// Everything here is pure: results depend only on the arguments and nothing
// is mutated.
package match

import (
	"sort"

	"github.com/Veraticus/pantry-genius/internal/model"
)

// Pantry is the read side of a pantry needed for matching.
type Pantry interface {
	Contains(ingredient string) bool
	IsEmpty() bool
}

// IngredientStatus tags one recipe ingredient as available or missing.
type IngredientStatus struct {
	Name      string
	Available bool
}

// Result is a recipe's availability against a pantry.
type Result struct {
	Ingredients    []IngredientStatus
	AvailableCount int
	TotalCount     int
}

// Missing returns the number of ingredients not in the pantry.
func (r Result) Missing() int {
	return r.TotalCount - r.AvailableCount
}

// Match pairs a recipe with its availability.
type Match struct {
	Recipe model.Recipe
	Result Result
}

// Availability tags each of the recipe's ingredients against the pantry.
func Availability(recipe model.Recipe, pantry Pantry) Result {
	res := Result{
		Ingredients: make([]IngredientStatus, len(recipe.Ingredients)),
		TotalCount:  len(recipe.Ingredients),
	}
	for i, ingredient := range recipe.Ingredients {
		available := pantry.Contains(ingredient)
		res.Ingredients[i] = IngredientStatus{Name: ingredient, Available: available}
		if available {
			res.AvailableCount++
		}
	}
	return res
}

// Rank returns the recipes to show for the pantry, each with its availability.
//
// An empty pantry returns every recipe in its original order. Otherwise only
// recipes sharing at least one ingredient with the pantry are kept, ordered by
// available count descending; ties keep their original relative order.
func Rank(recipes []model.Recipe, pantry Pantry) []Match {
	out := make([]Match, 0, len(recipes))
	for _, recipe := range recipes {
		res := Availability(recipe, pantry)
		if !pantry.IsEmpty() && res.AvailableCount == 0 {
			continue
		}
		out = append(out, Match{Recipe: recipe, Result: res})
	}

	if pantry.IsEmpty() {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.AvailableCount > out[j].Result.AvailableCount
	})
	return out
}

// FilterAndRank is Rank without the availability details.
func FilterAndRank(recipes []model.Recipe, pantry Pantry) []model.Recipe {
	matches := Rank(recipes, pantry)
	out := make([]model.Recipe, len(matches))
	for i, m := range matches {
		out[i] = m.Recipe
	}
	return out
}
