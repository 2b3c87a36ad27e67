package testutil

import "github.com/Veraticus/pantry-genius/internal/model"

// Soup is a three-ingredient fixture.
func Soup() model.Draft {
	return model.Draft{
		Name:         "Soup",
		Ingredients:  []string{"carrot", "onion", "stock"},
		Instructions: []string{"Chop the vegetables", "Simmer in stock"},
	}
}

// Salad is a two-ingredient fixture.
func Salad() model.Draft {
	return model.Draft{
		Name:         "Salad",
		Ingredients:  []string{"lettuce", "tomato"},
		Instructions: []string{"Toss"},
	}
}
