package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pantry-genius/internal/cli"
	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/controller"
	"github.com/Veraticus/pantry-genius/internal/model"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one recipe with the ingredients you have and lack",
		Example: `  pantry show "Pancakes" --have egg,milk`,
		Args: cobra.MinimumNArgs(1),
		RunE: runShow,
	}
	addHaveFlag(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	have, _ := cmd.Flags().GetStringSlice("have")

	session, err := newSession()
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Load(cmd.Context()); err != nil {
		writeln(cmd, cli.RenderUserError(err, common.MsgFetchFailed))
		return err
	}
	fillPantry(session, have)

	recipe, err := findByName(session.Catalog.All(), name)
	if err != nil {
		return err
	}

	session.Controller.OnSelectRecipe(recipe)
	detail, ok := session.Controller.State().(controller.DetailView)
	if !ok {
		return fmt.Errorf("unexpected view state %s", session.Controller.State().Mode())
	}
	writeln(cmd, cli.RenderRecipe(detail))
	return nil
}

// findByName returns the first recipe whose name equals name ignoring case,
// or else the only recipe whose name contains it.
func findByName(recipes []model.Recipe, name string) (model.Recipe, error) {
	want := model.Canonical(name)
	var partial []model.Recipe
	for _, r := range recipes {
		got := model.Canonical(r.Name)
		if got == want {
			return r, nil
		}
		if strings.Contains(got, want) {
			partial = append(partial, r)
		}
	}

	switch len(partial) {
	case 1:
		return partial[0], nil
	case 0:
		return model.Recipe{}, fmt.Errorf("recipe %q: %w", name, common.ErrNotFound)
	default:
		names := make([]string, len(partial))
		for i, r := range partial {
			names[i] = r.Name
		}
		return model.Recipe{}, fmt.Errorf("recipe %q is ambiguous, matches: %s", name, strings.Join(names, ", "))
	}
}
