// Package service defines the interfaces for the recipe finder's external collaborators.
package service

import (
	"context"

	"github.com/Veraticus/pantry-genius/internal/model"
)

// RecipeService fetches the shared catalog and persists new recipes.
// Failures are reported as *NetworkError.
type RecipeService interface {
	// FetchAll returns every recipe in the catalog, in the service's order.
	FetchAll(ctx context.Context) ([]model.Recipe, error)
	// Create persists a validated draft and returns the recipe as stored.
	Create(ctx context.Context, draft model.Draft) (model.Recipe, error)
}

// RecipeStore is the persistence contract behind a recipe service backend.
type RecipeStore interface {
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	CreateRecipe(ctx context.Context, draft model.Draft) (*model.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)
	CountRecipes(ctx context.Context) (int, error)
	Migrate(ctx context.Context) error
	Close() error
}
