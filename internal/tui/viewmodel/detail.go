package viewmodel

import (
	"github.com/Veraticus/pantry-genius/internal/controller"
)

// IngredientTag is one ingredient of the detail view, marked by whether the
// pantry holds it.
type IngredientTag struct {
	Name      string
	Available bool
}

// Detail is a single recipe ready for rendering.
type Detail struct {
	Name        string
	ImageURL    string
	Summary     string
	Ingredients []IngredientTag
	Steps       []string
	Have        int
	Total       int
}

// Missing returns the names of ingredients the pantry lacks.
func (d Detail) Missing() []string {
	var out []string
	for _, tag := range d.Ingredients {
		if !tag.Available {
			out = append(out, tag.Name)
		}
	}
	return out
}

// FromDetail builds the detail view for v.
func FromDetail(v controller.DetailView) Detail {
	d := Detail{
		Name:        v.Recipe.Name,
		ImageURL:    v.Recipe.Image(),
		Have:        v.Availability.AvailableCount,
		Total:       v.Availability.TotalCount,
		Summary:     Summary(v.Availability.AvailableCount, v.Availability.TotalCount),
		Ingredients: make([]IngredientTag, len(v.Availability.Ingredients)),
		Steps:       append([]string(nil), v.Recipe.Instructions...),
	}
	for i, status := range v.Availability.Ingredients {
		d.Ingredients[i] = IngredientTag{Name: status.Name, Available: status.Available}
	}
	return d
}
