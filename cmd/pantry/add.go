package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pantry-genius/internal/cli"
	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/controller"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new recipe to the catalog",
		Long: `Submit a new recipe. Ingredients are comma separated and instructions are
one step per line. Every field is required; an incomplete recipe is never
sent. Without any flags the fields are prompted for interactively.`,
		Example: `  pantry add --name Pancakes --ingredients "flour, egg, milk" --instructions-file steps.txt
  pantry add --name Toast --ingredients bread,butter --step "Toast the bread" --step "Butter it"`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("name", "", "recipe name")
	cmd.Flags().String("ingredients", "", "ingredients, comma separated")
	cmd.Flags().String("instructions", "", "instructions, one step per line")
	cmd.Flags().StringArray("step", nil, "one instruction step (repeatable)")
	cmd.Flags().String("instructions-file", "", "read instructions from a file, one step per line")
	cmd.MarkFlagsMutuallyExclusive("instructions", "instructions-file", "step")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	form, err := readForm(cmd)
	if err != nil {
		return err
	}

	session, err := newSession()
	if err != nil {
		return err
	}
	defer session.Close()

	recipe, err := session.Submit(cmd.Context(), form)
	if err != nil {
		writeln(cmd, cli.RenderUserError(err, common.MsgSubmitFailed))
		return err
	}

	writeln(cmd, cli.FormatSuccess(common.MsgRecipeAdded))
	printf(cmd, "%s %s\n", cli.BoldStyle.Render(recipe.Name), cli.SubtleStyle.Render(recipe.ID))
	return nil
}

// readForm builds the form from flags, or prompts for it when no field flag
// was given.
func readForm(cmd *cobra.Command) (controller.DraftForm, error) {
	flags := cmd.Flags()
	if !flags.Changed("name") && !flags.Changed("ingredients") &&
		!flags.Changed("instructions") && !flags.Changed("instructions-file") && !flags.Changed("step") {
		return cli.NewFormPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Prompt(cmd.Context())
	}

	name, _ := flags.GetString("name")
	ingredients, _ := flags.GetString("ingredients")
	instructions, _ := flags.GetString("instructions")
	steps, _ := flags.GetStringArray("step")
	file, _ := flags.GetString("instructions-file")

	switch {
	case file != "":
		data, err := os.ReadFile(file) //nolint:gosec // user-supplied path is intended
		if err != nil {
			return controller.DraftForm{}, fmt.Errorf("failed to read instructions: %w", err)
		}
		instructions = string(data)
	case len(steps) > 0:
		instructions = strings.Join(steps, "\n")
	}

	return controller.DraftForm{
		Name:         name,
		Ingredients:  ingredients,
		Instructions: instructions,
	}, nil
}
