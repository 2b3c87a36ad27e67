package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/pantry-genius/internal/controller"
)

// FormPrompter collects a new recipe form interactively.
type FormPrompter struct {
	writer io.Writer
	reader *NonBlockingReader
}

// NewFormPrompter creates a prompter reading from reader and writing prompts
// to writer. Nil arguments default to stdin and stdout.
func NewFormPrompter(reader io.Reader, writer io.Writer) *FormPrompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &FormPrompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// Prompt asks for each form field. Instructions are read one step per line
// until an empty line. The form is returned unvalidated.
func (p *FormPrompter) Prompt(ctx context.Context) (controller.DraftForm, error) {
	var form controller.DraftForm

	if _, err := fmt.Fprintln(p.writer, FormatTitle("Add a New Recipe")); err != nil {
		return form, fmt.Errorf("failed to write title: %w", err)
	}

	name, err := p.ask(ctx, "Recipe name")
	if err != nil {
		return form, err
	}
	form.Name = name

	ingredients, err := p.ask(ctx, "Ingredients (comma separated)")
	if err != nil {
		return form, err
	}
	form.Ingredients = ingredients

	if _, err := fmt.Fprintln(p.writer, FormatPrompt("Instructions (one step per line, empty line to finish)")); err != nil {
		return form, fmt.Errorf("failed to write prompt: %w", err)
	}
	instructions, err := p.reader.ReadBlock(ctx)
	if err != nil {
		return form, fmt.Errorf("failed to read instructions: %w", err)
	}
	form.Instructions = instructions

	return form, nil
}

func (p *FormPrompter) ask(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	value, err := p.reader.ReadLine(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", prompt, err)
	}
	return value, nil
}
