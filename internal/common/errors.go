// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Import errors.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Messages shown to the user when an operation fails or succeeds.
const (
	MsgFetchFailed    = "Could not load recipes. Please try again later."
	MsgNoRecipes      = "No recipes found. Try different ingredients!"
	MsgIncompleteForm = "Please fill out all recipe fields."
	MsgSubmitFailed   = "There was an error adding your recipe."
	MsgRecipeAdded    = "Recipe added successfully!"
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the message meant for the user, or fallback if err
// carries none.
func UserMessage(err error, fallback string) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return fallback
}
