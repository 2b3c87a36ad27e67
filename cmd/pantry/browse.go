package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/pantry-genius/internal/tui"
	"github.com/Veraticus/pantry-genius/internal/tui/themes"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse recipes interactively",
		Long: `Open the interactive recipe finder. Add pantry ingredients, browse the
ranked recipe cards, open a recipe to see which ingredients you have, and
contribute new recipes.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}

	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	cmd.Flags().StringSlice("have", nil, "start with these pantry ingredients")

	return cmd
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	themeName, _ := cmd.Flags().GetString("theme")
	have, _ := cmd.Flags().GetStringSlice("have")

	session, err := newSession()
	if err != nil {
		return err
	}
	defer session.Close()

	fillPantry(session, have)

	return tui.Run(cmd.Context(), session, tui.WithTheme(themes.GetTheme(themeName)))
}
