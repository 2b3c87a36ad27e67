// Package model defines the recipe finder's data types.
package model

import "strings"

// PlaceholderImageURL is shown for recipes that were stored without an image.
const PlaceholderImageURL = "https://placehold.co/400x300/f8f8f8/ccc?text=No+Image"

// Recipe is a catalog entry as returned by the recipe service.
// Ingredients keep the form they were entered in; matching goes through Canonical.
type Recipe struct {
	ID           string   `json:"_id,omitempty" yaml:"id,omitempty"`
	Name         string   `json:"name" yaml:"name"`
	ImageURL     string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
	Instructions []string `json:"instructions" yaml:"instructions"`
}

// Image returns the recipe image, falling back to the placeholder.
func (r Recipe) Image() string {
	if strings.TrimSpace(r.ImageURL) == "" {
		return PlaceholderImageURL
	}
	return r.ImageURL
}

// HasIdentity reports whether the service has assigned the recipe an ID.
func (r Recipe) HasIdentity() bool {
	return r.ID != ""
}

// Canonical returns the matching form of an ingredient name: trimmed and lowercased.
func Canonical(ingredient string) string {
	return strings.ToLower(strings.TrimSpace(ingredient))
}
