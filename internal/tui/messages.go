package tui

import "github.com/Veraticus/pantry-genius/internal/model"

// catalogLoadedMsg carries the outcome of a FetchAll call.
type catalogLoadedMsg struct {
	err     error
	recipes []model.Recipe
}

// recipeCreatedMsg carries the outcome of a Create call.
type recipeCreatedMsg struct {
	err    error
	recipe model.Recipe
	draft  model.Draft
}
