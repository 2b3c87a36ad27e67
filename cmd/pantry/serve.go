package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/pantry-genius/internal/certs"
	"github.com/Veraticus/pantry-genius/internal/config"
	"github.com/Veraticus/pantry-genius/internal/importer"
	"github.com/Veraticus/pantry-genius/internal/server"
	"github.com/Veraticus/pantry-genius/internal/service"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a recipe backend backed by a local database",
		Long: `Serve the /api/recipes JSON API from a local SQLite database. Point other
pantry commands at it with --api-url http://localhost:8080.

With --tls, a self-signed localhost certificate is created in --cert-dir and
the API is served over HTTPS. Clients trust it with --api-ca pointing at the
generated localhost.crt.

With --seed, an empty database is first filled from a recipe file in any
format accepted by 'pantry import'.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default: :8080)")
	cmd.Flags().String("db", "", "database path (default: ~/.local/share/pantry/recipes.db)")
	cmd.Flags().String("seed", "", "recipe file used to fill an empty database")
	cmd.Flags().Bool("tls", false, "serve HTTPS with a self-signed localhost certificate")
	cmd.Flags().String("cert-dir", "", "certificate directory (default: ~/.local/share/pantry/certs)")

	_ = viper.BindPFlag(config.KeyServerAddr, cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag(config.KeyServerDBPath, cmd.Flags().Lookup("db"))
	_ = viper.BindPFlag(config.KeyServerTLS, cmd.Flags().Lookup("tls"))
	_ = viper.BindPFlag(config.KeyServerCertDir, cmd.Flags().Lookup("cert-dir"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	seed, _ := cmd.Flags().GetString("seed")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := initStorage(ctx, cfg.Server.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			slog.Warn("Failed to close database", "error", cerr)
		}
	}()

	if seed != "" {
		if err := seedStore(ctx, store, seed); err != nil {
			return err
		}
	}

	srv := server.New(store)
	if !cfg.Server.TLS {
		slog.Info("Starting recipe API", "addr", cfg.Server.Addr, "database", store.Path())
		return srv.ListenAndServe(ctx, cfg.Server.Addr)
	}

	manager := certs.NewFileManager(cfg.Server.CertDir)
	cert, err := manager.GetOrCreateCertificate()
	if err != nil {
		return fmt.Errorf("failed to prepare certificate: %w", err)
	}
	slog.Info("Starting recipe API over HTTPS",
		"addr", cfg.Server.Addr,
		"database", store.Path(),
		"ca_file", manager.CertFile())
	return srv.ListenAndServeTLS(ctx, cfg.Server.Addr, cert)
}

// seedStore fills an empty store from a recipe file. A store that already
// holds recipes is left alone.
func seedStore(ctx context.Context, store service.RecipeStore, path string) error {
	count, err := store.CountRecipes(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Database already has recipes, skipping seed", "count", count)
		return nil
	}

	result, err := importer.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}
	for _, draft := range result.Drafts {
		if _, err := store.CreateRecipe(ctx, draft); err != nil {
			return fmt.Errorf("failed to seed %q: %w", draft.Name, err)
		}
	}
	slog.Info("Seeded recipes", "count", len(result.Drafts), "skipped", len(result.Skipped))
	return nil
}
