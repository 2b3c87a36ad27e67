package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/controller"
	"github.com/Veraticus/pantry-genius/internal/tui/viewmodel"
)

// RenderCatalog renders a catalog view as a ranked list, one recipe per line
// with its "You have" count. Empty and failed views render their message.
func RenderCatalog(view controller.CatalogView) string {
	grid := viewmodel.FromCatalog(view, viewmodel.NoSelection)
	if grid.IsEmpty() {
		if grid.IsError {
			return FormatError(grid.Message)
		}
		return SubtleStyle.Render(grid.Message)
	}

	width := 0
	for _, card := range grid.Cards {
		width = max(width, lipgloss.Width(card.Name))
	}

	lines := make([]string, len(grid.Cards))
	for i, card := range grid.Cards {
		summary := SubtleStyle.Render(card.Summary)
		if card.Total > 0 && card.Have == card.Total {
			summary = SuccessStyle.Render(card.Summary)
		}
		lines[i] = fmt.Sprintf("%2d. %s  %s",
			i+1,
			BoldStyle.Render(card.Name)+strings.Repeat(" ", width-lipgloss.Width(card.Name)),
			summary)
	}
	return strings.Join(lines, "\n")
}

// RenderRecipe renders a detail view: image, availability, tagged
// ingredients, and numbered steps.
func RenderRecipe(view controller.DetailView) string {
	d := viewmodel.FromDetail(view)

	tags := make([]string, len(d.Ingredients))
	for i, tag := range d.Ingredients {
		if tag.Available {
			tags[i] = AvailableStyle.Render(SuccessIcon + " " + tag.Name)
		} else {
			tags[i] = MissingStyle.Render(ErrorIcon + " " + tag.Name)
		}
	}

	steps := make([]string, len(d.Steps))
	for i, step := range d.Steps {
		steps[i] = fmt.Sprintf("%d. %s", i+1, step)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		SubtleStyle.Render(d.ImageURL),
		SubtitleStyle.Render(d.Summary),
		"",
		BoldStyle.Render("Ingredients"),
		strings.Join(tags, "\n"),
		"",
		BoldStyle.Render("Instructions"),
		strings.Join(steps, "\n"),
	)
	return RenderBox(d.Name, content)
}

// RenderPantry renders the pantry as a comma separated list.
func RenderPantry(items []string) string {
	if len(items) == 0 {
		return SubtleStyle.Render("Pantry is empty; showing every recipe.")
	}
	return InfoStyle.Render("Pantry: " + strings.Join(items, ", "))
}

// RenderUserError renders err with its user-facing message, falling back to
// fallback.
func RenderUserError(err error, fallback string) string {
	return FormatError(common.UserMessage(err, fallback))
}
