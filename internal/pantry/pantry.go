// Package pantry holds the set of ingredients the user has on hand.
//
// A State is owned by a single session and is not safe for concurrent use.
package pantry

import (
	"log/slog"

	"github.com/Veraticus/pantry-genius/internal/model"
)

// State is an insertion-ordered set of canonical ingredient names.
type State struct {
	members     map[string]struct{}
	subscribers map[int]func()
	items       []string
	nextID      int
}

// New creates an empty pantry.
func New() *State {
	return &State{
		members:     make(map[string]struct{}),
		subscribers: make(map[int]func()),
	}
}

// Add canonicalizes raw and inserts it. Empty input and ingredients that are
// already present are ignored. Returns true if the pantry changed.
func (s *State) Add(raw string) bool {
	ingredient := model.Canonical(raw)
	if ingredient == "" {
		return false
	}
	if _, ok := s.members[ingredient]; ok {
		return false
	}

	s.members[ingredient] = struct{}{}
	s.items = append(s.items, ingredient)
	slog.Debug("pantry ingredient added", "ingredient", ingredient, "count", len(s.items))
	s.notify()
	return true
}

// Remove deletes an ingredient if present. Returns true if the pantry changed.
func (s *State) Remove(ingredient string) bool {
	ingredient = model.Canonical(ingredient)
	if _, ok := s.members[ingredient]; !ok {
		return false
	}

	delete(s.members, ingredient)
	for i, item := range s.items {
		if item == ingredient {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	slog.Debug("pantry ingredient removed", "ingredient", ingredient, "count", len(s.items))
	s.notify()
	return true
}

// Contains reports whether the canonical form of text is in the pantry.
func (s *State) Contains(text string) bool {
	_, ok := s.members[model.Canonical(text)]
	return ok
}

// IsEmpty reports whether no ingredients have been declared.
func (s *State) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of ingredients.
func (s *State) Len() int {
	return len(s.items)
}

// Items returns the ingredients in the order they were added.
func (s *State) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Subscribe registers fn to run after every change. The returned function
// removes the subscription.
func (s *State) Subscribe(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() {
		delete(s.subscribers, id)
	}
}

func (s *State) notify() {
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			fn()
		}
	}
}
