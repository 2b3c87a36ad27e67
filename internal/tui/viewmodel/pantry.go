package viewmodel

// PantryTag is one pantry ingredient.
type PantryTag struct {
	Name    string
	Focused bool
}

// Pantry is the pantry bar: an input plus removable tags.
type Pantry struct {
	Tags []PantryTag
}

// IsEmpty reports a pantry with no ingredients.
func (p Pantry) IsEmpty() bool {
	return len(p.Tags) == 0
}

// FromPantry builds the pantry bar. focused is the index of the highlighted
// tag, or -1 for none.
func FromPantry(items []string, focused int) Pantry {
	p := Pantry{Tags: make([]PantryTag, len(items))}
	for i, item := range items {
		p.Tags[i] = PantryTag{Name: item, Focused: i == focused}
	}
	return p
}
