package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/pantry-genius/internal/controller"
	"github.com/Veraticus/pantry-genius/internal/tui/viewmodel"
)

// cardWidth is the inner width of a recipe card.
const cardWidth = 26

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("Pantry Genius"),
		m.renderPantry(),
	}

	switch {
	case m.focus == FocusForm:
		sections = append(sections, m.renderForm())
	default:
		switch state := m.session.Controller.State().(type) {
		case controller.DetailView:
			sections = append(sections, m.renderDetail(viewmodel.FromDetail(state)))
		case controller.CatalogView:
			sections = append(sections, m.renderGrid(viewmodel.FromCatalog(state, m.cursor)))
		}
	}

	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	if m.config.ShowHelp {
		sections = append(sections, m.help.View(m.keymap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) panel(focused bool) lipgloss.Style {
	style := m.theme.Panel
	if focused {
		style = m.theme.FocusedPanel
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style
}

// renderPantry renders the ingredient input and the removable pantry tags.
func (m Model) renderPantry() string {
	focusedTag := -1
	if m.focus == FocusTags {
		focusedTag = m.tagCursor
	}
	pantry := viewmodel.FromPantry(m.session.Pantry.Items(), focusedTag)

	var tags string
	if pantry.IsEmpty() {
		tags = m.theme.Italic.Render("Your pantry is empty. Every recipe is shown.")
	} else {
		rendered := make([]string, len(pantry.Tags))
		for i, tag := range pantry.Tags {
			style := m.theme.PantryTag
			if tag.Focused {
				style = m.theme.FocusedTag
			}
			rendered[i] = style.Render(tag.Name + " ×")
		}
		tags = lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render("My Pantry"),
		m.input.View(),
		tags,
	)
	return m.panel(m.focus == FocusPantry || m.focus == FocusTags).Render(content)
}

// renderGrid renders the catalog as rows of recipe cards.
func (m Model) renderGrid(grid viewmodel.CatalogGrid) string {
	focused := m.focus == FocusRecipes

	if grid.IsEmpty() {
		var msg string
		switch {
		case grid.Loading:
			msg = m.spinner.View() + " " + m.theme.StatusPending.Render(grid.Message)
		case grid.IsError:
			msg = m.theme.StatusError.Render(grid.Message)
		default:
			msg = m.theme.Italic.Render(grid.Message)
		}
		return m.panel(focused).Render(msg)
	}

	cols := m.columns()
	var rows []string
	for start := 0; start < len(grid.Cards); start += cols {
		end := min(start+cols, len(grid.Cards))
		cards := make([]string, 0, end-start)
		for _, card := range grid.Cards[start:end] {
			cards = append(cards, m.renderCard(card, focused))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	header := m.theme.Bold.Render(fmt.Sprintf("Recipes (%d)", len(grid.Cards)))
	if m.loading {
		header += " " + m.spinner.View()
	}
	return m.panel(focused).Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...))
}

func (m Model) renderCard(card viewmodel.Card, focused bool) string {
	style := m.theme.Card
	if card.Selected && focused {
		style = m.theme.SelectedCard
	}

	summary := m.theme.Subtitle.Render(card.Summary)
	if card.Total > 0 && card.Have == card.Total {
		summary = m.theme.StatusSuccess.Render(card.Summary)
	}

	return style.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render(truncate(card.Name, cardWidth-2)),
		summary,
	))
}

// renderDetail renders one recipe with its ingredient availability.
func (m Model) renderDetail(d viewmodel.Detail) string {
	tags := make([]string, len(d.Ingredients))
	for i, tag := range d.Ingredients {
		if tag.Available {
			tags[i] = m.theme.Available.Render(tag.Name)
		} else {
			tags[i] = m.theme.Missing.Render(tag.Name)
		}
	}

	steps := make([]string, len(d.Steps))
	for i, step := range d.Steps {
		steps[i] = m.theme.Normal.Render(fmt.Sprintf("%d. %s", i+1, step))
	}

	lines := []string{
		m.theme.Title.Render(d.Name),
		m.theme.Italic.Render(d.ImageURL),
		m.theme.Subtitle.Render(d.Summary),
		"",
		m.theme.Bold.Render("Ingredients"),
		lipgloss.JoinHorizontal(lipgloss.Top, tags...),
		"",
		m.theme.Bold.Render("Instructions"),
	}
	lines = append(lines, steps...)
	lines = append(lines, "", m.theme.StatusPending.Render("Esc: back to recipes"))

	return m.panel(m.focus == FocusRecipes).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderForm renders the new-recipe form.
func (m Model) renderForm() string {
	label := func(text string, field formField) string {
		if m.form.field == field {
			return m.theme.Selected.Render(text)
		}
		return m.theme.Bold.Render(text)
	}

	lines := []string{
		m.theme.Title.Render("Add a New Recipe"),
		label("Name", fieldName),
		m.form.name.View(),
		label("Ingredients", fieldIngredients),
		m.form.ingredients.View(),
		label("Instructions", fieldInstructions),
		m.form.instructions.View(),
	}
	if m.submitting {
		lines = append(lines, m.spinner.View()+" "+m.theme.StatusPending.Render("Saving recipe..."))
	} else {
		lines = append(lines, m.theme.StatusPending.Render("Ctrl+S: save  Esc: cancel"))
	}

	return m.panel(true).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.theme.StatusError.Render(m.status)
	}
	return m.theme.StatusSuccess.Render(m.status)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return strings.TrimSpace(string(r[:width-1])) + "…"
}
