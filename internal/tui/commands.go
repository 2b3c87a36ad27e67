package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/pantry-genius/internal/model"
)

// fetchCatalog loads every recipe off the update loop. The result is applied
// to the session when the message comes back.
func (m Model) fetchCatalog() tea.Cmd {
	ctx := m.ctx
	svc := m.session.Service()
	return func() tea.Msg {
		recipes, err := svc.FetchAll(ctx)
		return catalogLoadedMsg{recipes: recipes, err: err}
	}
}

// createRecipe submits a validated draft. The catalog only changes once the
// service has confirmed the recipe.
func (m Model) createRecipe(draft model.Draft) tea.Cmd {
	ctx := m.ctx
	svc := m.session.Service()
	return func() tea.Msg {
		recipe, err := svc.Create(ctx, draft)
		return recipeCreatedMsg{draft: draft, recipe: recipe, err: err}
	}
}
