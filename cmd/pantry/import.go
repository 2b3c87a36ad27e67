package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pantry-genius/internal/cli"
	"github.com/Veraticus/pantry-genius/internal/importer"
	"github.com/Veraticus/pantry-genius/internal/model"
	"github.com/Veraticus/pantry-genius/internal/service"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Submit recipes in bulk from a file",
		Long: `Read recipes from a JSON/JSONC, YAML, XLSX, CSV or HTML file and submit
each valid one to the recipe backend.

Spreadsheet, CSV and HTML tables use three columns: name, ingredients (comma
separated) and instructions (one step per line). JSON and YAML files hold a
list of {name, ingredients, instructions} objects, optionally under a
"recipes" key. Invalid rows are reported and skipped. Failed submissions are
counted and not retried.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Validate the file without submitting anything")

	return cmd
}

// importSummary counts the outcome of a bulk submission.
type importSummary struct {
	Submitted int
	Failed    int
	Skipped   int
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	result, err := importer.Load(args[0])
	if err != nil {
		return err
	}

	writeln(cmd, cli.FormatTitle(fmt.Sprintf("Importing %d recipes from %s", len(result.Drafts), args[0])))
	for _, skipped := range result.Skipped {
		writeln(cmd, cli.FormatWarning("Skipped "+skipped.Error()))
	}

	if dryRun {
		writeln(cmd, cli.FormatInfo(fmt.Sprintf("Dry run: %d valid, %d skipped", len(result.Drafts), len(result.Skipped))))
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := newRecipeService(cfg)
	if err != nil {
		return err
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := interrupts.HandleInterrupts(cmd.Context(), "Recipes submitted before the interrupt were kept.")
	defer interrupts.Stop()

	summary := submitAll(ctx, cmd, svc, result.Drafts)
	summary.Skipped = len(result.Skipped)

	writeln(cmd, cli.FormatInfo(fmt.Sprintf("Submitted %d, failed %d, skipped %d",
		summary.Submitted, summary.Failed, summary.Skipped)))

	if interrupts.WasInterrupted() {
		return ctx.Err()
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d recipes could not be submitted", summary.Failed, len(result.Drafts))
	}
	return nil
}

// submitAll creates each draft in order, stopping early if ctx is canceled.
func submitAll(ctx context.Context, cmd *cobra.Command, svc service.RecipeService, drafts []model.Draft) importSummary {
	var summary importSummary
	bar := cli.NewProgressBar(cmd.ErrOrStderr(), len(drafts), "Submitting recipes...")

	for _, draft := range drafts {
		if ctx.Err() != nil {
			break
		}

		if _, err := svc.Create(ctx, draft); err != nil {
			summary.Failed++
			slog.Warn("Failed to submit recipe", "name", draft.Name, "error", err)
		} else {
			summary.Submitted++
		}

		if err := bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}
	return summary
}
