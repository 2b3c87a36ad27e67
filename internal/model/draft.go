package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDraft is matched by every *ValidationError.
var ErrInvalidDraft = errors.New("invalid recipe draft")

// Draft field names reported by ValidationError.
const (
	FieldName         = "name"
	FieldIngredients  = "ingredients"
	FieldInstructions = "instructions"
)

// Draft is a new recipe that has passed local validation and may be sent to the service.
type Draft struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// ValidationError lists the draft fields that were empty after parsing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrInvalidDraft, strings.Join(e.Fields, ", "))
}

// Is makes errors.Is(err, ErrInvalidDraft) true for validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDraft
}

// ParseDraft builds a draft from free-text form fields. Ingredients are comma
// separated and canonicalized; instructions are one step per line. Empty
// entries are dropped, and at least one of each must remain.
func ParseDraft(name, ingredients, instructions string) (Draft, error) {
	return NewDraft(name, strings.Split(ingredients, ","), strings.Split(instructions, "\n"))
}

// NewDraft validates already-split fields using the same rules as ParseDraft.
func NewDraft(name string, ingredients, instructions []string) (Draft, error) {
	d := Draft{
		Name:         strings.TrimSpace(name),
		Ingredients:  cleanList(ingredients, Canonical),
		Instructions: cleanList(instructions, strings.TrimSpace),
	}

	var missing []string
	if d.Name == "" {
		missing = append(missing, FieldName)
	}
	if len(d.Ingredients) == 0 {
		missing = append(missing, FieldIngredients)
	}
	if len(d.Instructions) == 0 {
		missing = append(missing, FieldInstructions)
	}
	if len(missing) > 0 {
		return Draft{}, &ValidationError{Fields: missing}
	}
	return d, nil
}

// Validate re-checks a draft that was constructed directly.
func (d Draft) Validate() error {
	_, err := NewDraft(d.Name, d.Ingredients, d.Instructions)
	return err
}

// Recipe converts the draft into an unidentified recipe.
func (d Draft) Recipe() Recipe {
	return Recipe{
		Name:         d.Name,
		Ingredients:  append([]string(nil), d.Ingredients...),
		Instructions: append([]string(nil), d.Instructions...),
	}
}

func cleanList(items []string, clean func(string) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if c := clean(item); c != "" {
			out = append(out, c)
		}
	}
	return out
}
