// Package catalog holds the session's in-memory recipe collection.
//
// A Catalog is not safe for concurrent use; it is owned by one controller.
package catalog

import (
	"log/slog"

	"github.com/Veraticus/pantry-genius/internal/model"
)

// Catalog is an ordered list of recipes: fetch order followed by append order.
type Catalog struct {
	recipes []model.Recipe
	loaded  bool
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// ReplaceAll discards the current contents and stores recipes in the given order.
func (c *Catalog) ReplaceAll(recipes []model.Recipe) {
	c.recipes = make([]model.Recipe, len(recipes))
	copy(c.recipes, recipes)
	c.loaded = true
	slog.Debug("catalog replaced", "recipes", len(c.recipes))
}

// Append adds a recipe to the end of the catalog.
func (c *Catalog) Append(recipe model.Recipe) {
	c.recipes = append(c.recipes, recipe)
	c.loaded = true
	slog.Debug("catalog appended", "recipe", recipe.Name, "recipes", len(c.recipes))
}

// All returns the recipes in catalog order. The slice is a copy.
func (c *Catalog) All() []model.Recipe {
	out := make([]model.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Loaded reports whether the catalog has ever received recipes, either from a
// fetch or from a local append.
func (c *Catalog) Loaded() bool {
	return c.loaded
}
