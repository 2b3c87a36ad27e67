package controller

import (
	"context"
	"log/slog"

	"github.com/Veraticus/pantry-genius/internal/catalog"
	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/model"
	"github.com/Veraticus/pantry-genius/internal/pantry"
	"github.com/Veraticus/pantry-genius/internal/service"
)

// DraftForm is the raw new-recipe form: a name, comma-separated ingredients,
// and one instruction per line.
type DraftForm struct {
	Name         string
	Ingredients  string
	Instructions string
}

// Parse validates the form into a draft.
func (f DraftForm) Parse() (model.Draft, error) {
	return model.ParseDraft(f.Name, f.Ingredients, f.Instructions)
}

// Session owns the state objects for one user session and connects the
// controller to the recipe service.
type Session struct {
	Pantry     *pantry.State
	Catalog    *catalog.Catalog
	Controller *Controller
	service    service.RecipeService
}

// NewSession creates a session with an empty pantry and catalog.
func NewSession(svc service.RecipeService) *Session {
	p := pantry.New()
	c := catalog.New()
	return &Session{
		Pantry:     p,
		Catalog:    c,
		Controller: New(p, c),
		service:    svc,
	}
}

// Close ends the session.
func (s *Session) Close() {
	s.Controller.Close()
}

// Service returns the recipe service the session submits to.
func (s *Session) Service() service.RecipeService {
	return s.service
}

// Load fetches the catalog. On failure the controller enters its fetch-failed
// state and the returned error carries the user-facing message.
func (s *Session) Load(ctx context.Context) error {
	recipes, err := s.service.FetchAll(ctx)
	return s.ApplyFetch(recipes, err)
}

// ApplyFetch applies the outcome of a FetchAll call made elsewhere, such as
// from a background command.
func (s *Session) ApplyFetch(recipes []model.Recipe, err error) error {
	if err != nil {
		common.LogError(err, "Failed to fetch recipes", nil)
		s.Controller.OnCatalogFetchFailed(err)
		return common.NewUserError(common.MsgFetchFailed, err)
	}

	slog.Info("Recipes loaded", "count", len(recipes))
	s.Controller.OnCatalogFetched(recipes)
	return nil
}

// Submit validates the form and, if valid, persists it and adds the stored
// recipe to the catalog. Invalid forms never reach the service. Nothing is
// added to the catalog unless the service confirms the recipe.
func (s *Session) Submit(ctx context.Context, form DraftForm) (model.Recipe, error) {
	draft, err := s.Validate(form)
	if err != nil {
		return model.Recipe{}, err
	}

	recipe, err := s.service.Create(ctx, draft)
	return s.ApplyCreate(draft, recipe, err)
}

// Validate parses the form, wrapping failures with the user-facing message.
func (s *Session) Validate(form DraftForm) (model.Draft, error) {
	draft, err := form.Parse()
	if err != nil {
		return model.Draft{}, common.NewUserError(common.MsgIncompleteForm, err)
	}
	return draft, nil
}

// ApplyCreate applies the outcome of a Create call for draft.
func (s *Session) ApplyCreate(draft model.Draft, recipe model.Recipe, err error) (model.Recipe, error) {
	if err != nil {
		common.LogError(err, "Error adding recipe", common.Fields{"name": draft.Name})
		return model.Recipe{}, common.NewUserError(common.MsgSubmitFailed, err)
	}

	slog.Info("Recipe added", "name", recipe.Name, "id", recipe.ID)
	s.Controller.OnRecipeAdded(recipe)
	return recipe, nil
}
