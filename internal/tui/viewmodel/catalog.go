// Package viewmodel converts controller state into plain structs the TUI
// renders. Nothing here depends on terminal styling, so layouts can be tested
// without a program running.
package viewmodel

import (
	"fmt"

	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/controller"
)

// MsgLoading is shown while the first fetch is outstanding.
const MsgLoading = "Loading recipes..."

// Card is one recipe in the catalog grid.
type Card struct {
	Name     string
	ImageURL string
	Summary  string
	Have     int
	Total    int
	Selected bool
}

// CatalogGrid is the catalog view ready for rendering.
type CatalogGrid struct {
	Message string
	Cards   []Card
	Cursor  int
	IsError bool
	Loading bool
}

// IsEmpty reports that a message replaces the grid.
func (g CatalogGrid) IsEmpty() bool {
	return len(g.Cards) == 0
}

// Summary formats the "You have: x/y" line of a card.
func Summary(have, total int) string {
	return fmt.Sprintf("You have: %d/%d", have, total)
}

// NoSelection is the cursor of a grid with no selected card.
const NoSelection = -1

// FromCatalog builds the grid for v with the card at cursor selected. The
// cursor is clamped to the visible cards; NoSelection selects nothing.
func FromCatalog(v controller.CatalogView, cursor int) CatalogGrid {
	grid := CatalogGrid{Cursor: NoSelection}
	if cursor != NoSelection {
		grid.Cursor = ClampCursor(cursor, len(v.Matches))
	}

	switch {
	case v.FetchFailed():
		grid.IsError = true
		grid.Message = common.MsgFetchFailed
		return grid
	case v.Status == controller.StatusPending:
		grid.Loading = true
		grid.Message = MsgLoading
		return grid
	case v.NoMatches():
		grid.Message = common.MsgNoRecipes
		return grid
	}

	grid.Cards = make([]Card, len(v.Matches))
	for i, m := range v.Matches {
		grid.Cards[i] = Card{
			Name:     m.Recipe.Name,
			ImageURL: m.Recipe.Image(),
			Have:     m.Result.AvailableCount,
			Total:    m.Result.TotalCount,
			Summary:  Summary(m.Result.AvailableCount, m.Result.TotalCount),
			Selected: i == grid.Cursor,
		}
	}
	return grid
}

// ClampCursor keeps cursor within [0, n). It returns 0 when n is 0.
func ClampCursor(cursor, n int) int {
	if n <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
