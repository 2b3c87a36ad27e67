package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pantry-genius/internal/cli"
	"github.com/Veraticus/pantry-genius/internal/controller"
)

func findCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "List recipes ranked by what is in your pantry",
		Long: `Fetch the recipe catalog and list every recipe that uses at least one of
your pantry ingredients, best matches first. With an empty pantry every
recipe is listed.`,
		Example: `  pantry find --have egg,milk,flour`,
		Args:    cobra.NoArgs,
		RunE:    runFind,
	}
	addHaveFlag(cmd)
	return cmd
}

func runFind(cmd *cobra.Command, _ []string) error {
	have, _ := cmd.Flags().GetStringSlice("have")

	session, err := newSession()
	if err != nil {
		return err
	}
	defer session.Close()

	fillPantry(session, have)
	loadErr := session.Load(cmd.Context())

	view, ok := session.Controller.State().(controller.CatalogView)
	if !ok {
		return errors.New("unexpected view state")
	}

	writeln(cmd, cli.RenderPantry(session.Pantry.Items()), "", cli.RenderCatalog(view))
	return loadErr
}
