// Package controller keeps the pantry, the recipe catalog, and the active view
// consistent.
//
// The Controller is a two-state machine (catalog list and recipe detail). It
// subscribes to pantry changes and re-renders synchronously after every
// transition. It is not safe for concurrent use: all calls must come from the
// goroutine that owns the session.
package controller

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/pantry-genius/internal/catalog"
	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/match"
	"github.com/Veraticus/pantry-genius/internal/model"
	"github.com/Veraticus/pantry-genius/internal/pantry"
)

// Controller drives the view state from pantry, catalog, and user selection.
type Controller struct {
	state             ViewState
	fetchErr          error
	pantry            *pantry.State
	catalog           *catalog.Catalog
	subscribers       map[int]func(ViewState)
	unsubscribePantry func()
	visible           []match.Match
	nextID            int
}

// New creates a controller over the given state objects. It starts in the
// catalog view with nothing visible, waiting for the first fetch.
func New(p *pantry.State, c *catalog.Catalog) *Controller {
	ctrl := &Controller{
		pantry:      p,
		catalog:     c,
		subscribers: make(map[int]func(ViewState)),
		state:       CatalogView{Status: StatusPending},
	}
	ctrl.unsubscribePantry = p.Subscribe(ctrl.OnPantryChanged)
	return ctrl
}

// Close detaches the controller from the pantry.
func (c *Controller) Close() {
	if c.unsubscribePantry != nil {
		c.unsubscribePantry()
		c.unsubscribePantry = nil
	}
}

// State returns the active view.
func (c *Controller) State() ViewState {
	return c.state
}

// Visible returns the last computed catalog list, even while a detail view is shown.
func (c *Controller) Visible() []match.Match {
	out := make([]match.Match, len(c.visible))
	copy(out, c.visible)
	return out
}

// Subscribe registers fn to receive every rendered state. The returned
// function removes the subscription.
func (c *Controller) Subscribe(fn func(ViewState)) func() {
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	return func() {
		delete(c.subscribers, id)
	}
}

// OnPantryChanged recomputes the visible recipes. A detail view stays open
// with its availability recomputed against the new pantry.
func (c *Controller) OnPantryChanged() {
	c.recompute()

	if detail, ok := c.state.(DetailView); ok {
		c.setState(DetailView{
			Recipe:       detail.Recipe,
			Availability: match.Availability(detail.Recipe, c.pantry),
		})
		return
	}
	c.setState(c.catalogView())
}

// OnSelectRecipe opens the detail view for recipe.
func (c *Controller) OnSelectRecipe(recipe model.Recipe) {
	c.setState(DetailView{
		Recipe:       recipe,
		Availability: match.Availability(recipe, c.pantry),
	})
}

// SelectVisible opens the detail view for the index-th visible recipe.
func (c *Controller) SelectVisible(index int) error {
	if index < 0 || index >= len(c.visible) {
		return fmt.Errorf("recipe %d: %w", index, common.ErrNotFound)
	}
	c.OnSelectRecipe(c.visible[index].Recipe)
	return nil
}

// OnFindRecipes re-ranks the catalog against the pantry and shows the result.
func (c *Controller) OnFindRecipes() {
	c.recompute()
	c.setState(c.catalogView())
}

// OnCatalogFetched replaces the catalog with a successful fetch and shows it.
func (c *Controller) OnCatalogFetched(recipes []model.Recipe) {
	c.fetchErr = nil
	c.catalog.ReplaceAll(recipes)
	c.OnFindRecipes()
}

// OnRecipeAdded appends a persisted recipe and re-ranks. A confirmed append
// ends a previous fetch failure.
func (c *Controller) OnRecipeAdded(recipe model.Recipe) {
	c.fetchErr = nil
	c.catalog.Append(recipe)
	c.OnFindRecipes()
}

// OnCatalogFetchFailed shows the catalog view in its error state.
func (c *Controller) OnCatalogFetchFailed(err error) {
	if err == nil {
		err = errors.New("catalog fetch failed")
	}
	c.fetchErr = err
	c.visible = nil
	c.setState(CatalogView{Status: StatusFetchFailed, Err: err})
}

// ReturnToCatalog shows the last computed list without recomputing it.
func (c *Controller) ReturnToCatalog() {
	c.setState(c.catalogView())
}

// recompute ranks the catalog. Nothing is visible while the last fetch failed,
// even if an older catalog is still held.
func (c *Controller) recompute() {
	if c.fetchErr != nil {
		c.visible = nil
		return
	}
	c.visible = match.Rank(c.catalog.All(), c.pantry)
	slog.Debug("recipes ranked",
		"visible", len(c.visible),
		"catalog", c.catalog.Len(),
		"pantry", c.pantry.Len())
}

func (c *Controller) catalogView() CatalogView {
	view := CatalogView{Matches: c.Visible()}
	switch {
	case c.fetchErr != nil:
		view.Status = StatusFetchFailed
		view.Err = c.fetchErr
	case c.catalog.Loaded():
		view.Status = StatusReady
	default:
		view.Status = StatusPending
	}
	return view
}

func (c *Controller) setState(state ViewState) {
	c.state = state
	slog.Debug("view rendered", "mode", state.Mode())
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.subscribers[id]; ok {
			fn(state)
		}
	}
}
