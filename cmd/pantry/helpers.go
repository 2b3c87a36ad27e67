package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pantry-genius/internal/certs"
	"github.com/Veraticus/pantry-genius/internal/config"
	"github.com/Veraticus/pantry-genius/internal/controller"
	"github.com/Veraticus/pantry-genius/internal/recipeapi"
	"github.com/Veraticus/pantry-genius/internal/service"
	"github.com/Veraticus/pantry-genius/internal/storage"
)

// newRecipeService builds the client for the configured backend. Tests
// replace it with an in-memory service.
var newRecipeService = func(cfg *config.Config) (service.RecipeService, error) {
	opts := []recipeapi.Option{recipeapi.WithTimeout(cfg.API.Timeout)}
	if cfg.API.CAFile != "" {
		pool, err := certs.LoadCertPool(cfg.API.CAFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, recipeapi.WithRootCAs(pool))
	}
	client, err := recipeapi.NewClient(cfg.API.BaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe client: %w", err)
	}
	return client, nil
}

// newSession creates a session over the configured recipe service.
func newSession() (*controller.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	svc, err := newRecipeService(cfg)
	if err != nil {
		return nil, err
	}
	return controller.NewSession(svc), nil
}

// fillPantry adds each --have value to the session pantry.
func fillPantry(session *controller.Session, have []string) {
	for _, item := range have {
		session.Pantry.Add(item)
	}
}

// addHaveFlag registers the --have flag shared by find and show.
func addHaveFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice("have", nil, "ingredients in your pantry (comma separated, repeatable)")
}

// initStorage opens and migrates the recipe database at dbPath.
func initStorage(ctx context.Context, dbPath string) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// printf writes to the command's output.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// writeln writes lines to the command's output.
func writeln(cmd *cobra.Command, lines ...string) {
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
}
