// Package servicetest provides an in-memory RecipeService for tests.
package servicetest

import (
	"context"
	"fmt"

	"github.com/Veraticus/pantry-genius/internal/model"
	"github.com/Veraticus/pantry-genius/internal/service"
)

// Compile-time interface check.
var _ service.RecipeService = (*FakeRecipeService)(nil)

// FakeRecipeService records calls and returns canned results.
type FakeRecipeService struct {
	FetchErr    error
	CreateErr   error
	Recipes     []model.Recipe
	Created     []model.Draft
	FetchCalls  int
	CreateCalls int
}

// FetchAll returns Recipes or FetchErr.
func (f *FakeRecipeService) FetchAll(_ context.Context) ([]model.Recipe, error) {
	f.FetchCalls++
	if f.FetchErr != nil {
		return nil, service.NewNetworkError(service.OpFetchAll, 0, f.FetchErr)
	}
	out := make([]model.Recipe, len(f.Recipes))
	copy(out, f.Recipes)
	return out, nil
}

// Create stores the draft and returns it with a sequential ID, or CreateErr.
func (f *FakeRecipeService) Create(_ context.Context, draft model.Draft) (model.Recipe, error) {
	f.CreateCalls++
	if f.CreateErr != nil {
		return model.Recipe{}, service.NewNetworkError(service.OpCreate, 0, f.CreateErr)
	}
	f.Created = append(f.Created, draft)
	recipe := draft.Recipe()
	recipe.ID = fmt.Sprintf("fake-%d", len(f.Created))
	f.Recipes = append(f.Recipes, recipe)
	return recipe, nil
}
