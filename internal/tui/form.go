package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/pantry-genius/internal/controller"
)

// formField identifies the focused input of the new-recipe form.
type formField int

const (
	fieldName formField = iota
	fieldIngredients
	fieldInstructions
	fieldCount
)

// recipeForm collects a new recipe: name, comma separated ingredients, and
// one instruction per line.
type recipeForm struct {
	name         textinput.Model
	ingredients  textinput.Model
	instructions textarea.Model
	field        formField
}

func newRecipeForm() recipeForm {
	name := textinput.New()
	name.Placeholder = "Recipe name"
	name.Prompt = ""
	name.CharLimit = 120

	ingredients := textinput.New()
	ingredients.Placeholder = "Ingredients (comma separated)"
	ingredients.Prompt = ""

	instructions := textarea.New()
	instructions.Placeholder = "Instructions (one step per line)"
	instructions.ShowLineNumbers = false
	instructions.SetHeight(5)

	return recipeForm{
		name:         name,
		ingredients:  ingredients,
		instructions: instructions,
	}
}

// Value returns the raw form contents.
func (f recipeForm) Value() controller.DraftForm {
	return controller.DraftForm{
		Name:         f.name.Value(),
		Ingredients:  f.ingredients.Value(),
		Instructions: f.instructions.Value(),
	}
}

// Reset clears every field and returns focus to the name.
func (f *recipeForm) Reset() tea.Cmd {
	f.name.Reset()
	f.ingredients.Reset()
	f.instructions.Reset()
	return f.focusField(fieldName)
}

// Focus focuses the current field.
func (f *recipeForm) Focus() tea.Cmd {
	return f.focusField(f.field)
}

// Blur unfocuses every field.
func (f *recipeForm) Blur() {
	f.name.Blur()
	f.ingredients.Blur()
	f.instructions.Blur()
}

// Move shifts focus by delta fields, wrapping around.
func (f *recipeForm) Move(delta int) tea.Cmd {
	next := (int(f.field) + delta + int(fieldCount)) % int(fieldCount)
	return f.focusField(formField(next))
}

// SetWidth resizes the inputs.
func (f *recipeForm) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	f.name.Width = width
	f.ingredients.Width = width
	f.instructions.SetWidth(width)
}

// InTextArea reports whether the multi-line instructions field is focused.
func (f recipeForm) InTextArea() bool {
	return f.field == fieldInstructions
}

// Update forwards msg to the focused field.
func (f recipeForm) Update(msg tea.Msg) (recipeForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.field {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldIngredients:
		f.ingredients, cmd = f.ingredients.Update(msg)
	case fieldInstructions:
		f.instructions, cmd = f.instructions.Update(msg)
	}
	return f, cmd
}

func (f *recipeForm) focusField(field formField) tea.Cmd {
	f.Blur()
	f.field = field
	switch field {
	case fieldIngredients:
		return f.ingredients.Focus()
	case fieldInstructions:
		return f.instructions.Focus()
	default:
		return f.name.Focus()
	}
}
