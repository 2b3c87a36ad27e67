package controller

import (
	"fmt"

	"github.com/Veraticus/pantry-genius/internal/match"
	"github.com/Veraticus/pantry-genius/internal/model"
)

// Mode identifies which view is active.
type Mode int

const (
	// ModeCatalog shows the filtered and ranked recipe list.
	ModeCatalog Mode = iota
	// ModeDetail shows a single recipe with ingredient availability.
	ModeDetail
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCatalog:
		return "Catalog"
	case ModeDetail:
		return "Detail"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// CatalogStatus distinguishes why a catalog view may be empty.
type CatalogStatus int

const (
	// StatusPending means the initial fetch has not completed yet.
	StatusPending CatalogStatus = iota
	// StatusReady means the list reflects the loaded catalog. An empty list
	// here means nothing matched.
	StatusReady
	// StatusFetchFailed means the catalog could not be loaded.
	StatusFetchFailed
)

// String returns a string representation of the status.
func (s CatalogStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusReady:
		return "Ready"
	case StatusFetchFailed:
		return "FetchFailed"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// ViewState is the active view: either CatalogView or DetailView.
type ViewState interface {
	Mode() Mode
	isViewState()
}

// CatalogView lists the visible recipes with their availability.
type CatalogView struct {
	Err     error
	Matches []match.Match
	Status  CatalogStatus
}

// Mode implements ViewState.
func (CatalogView) Mode() Mode { return ModeCatalog }

func (CatalogView) isViewState() {}

// Recipes returns the visible recipes in display order.
func (v CatalogView) Recipes() []model.Recipe {
	out := make([]model.Recipe, len(v.Matches))
	for i, m := range v.Matches {
		out[i] = m.Recipe
	}
	return out
}

// NoMatches reports a loaded catalog where nothing is visible.
func (v CatalogView) NoMatches() bool {
	return v.Status == StatusReady && len(v.Matches) == 0
}

// FetchFailed reports that the catalog could not be loaded.
func (v CatalogView) FetchFailed() bool {
	return v.Status == StatusFetchFailed
}

// DetailView shows one recipe.
type DetailView struct {
	Recipe       model.Recipe
	Availability match.Result
}

// Mode implements ViewState.
func (DetailView) Mode() Mode { return ModeDetail }

func (DetailView) isViewState() {}
