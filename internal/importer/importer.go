// Package importer reads recipe drafts in bulk from JSON, YAML, spreadsheet,
// CSV and HTML files.
//
// Every record goes through the same validation as the interactive form.
// Records that fail validation are reported in Result.Skipped and never
// abort the whole import.
package importer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/model"
)

// Format identifies an input file type.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

// RowError describes a record that was skipped.
type RowError struct {
	Err  error
	Name string
	Row  int
}

func (e RowError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Name, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Result holds the drafts that passed validation and the rows that did not.
type Result struct {
	Drafts  []model.Draft
	Skipped []RowError
}

// FormatFor infers the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads the file at path using the format implied by its extension.
func Load(path string) (*Result, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // importing a user-chosen file is the point
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("Failed to close import file", "path", path, "error", cerr)
		}
	}()

	result, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", path, err)
	}

	slog.Info("Parsed recipe file",
		"path", path,
		"format", format,
		"valid", len(result.Drafts),
		"skipped", len(result.Skipped))
	return result, nil
}

// Parse reads drafts from r in the given format.
func Parse(r io.Reader, format Format) (*Result, error) {
	var (
		records []record
		err     error
	)
	switch format {
	case FormatJSON:
		records, err = readJSON(r)
	case FormatYAML:
		records, err = readYAML(r)
	case FormatXLSX:
		records, err = readXLSX(r)
	case FormatCSV:
		records, err = readCSV(r)
	case FormatHTML:
		records, err = readHTML(r)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return validate(records), nil
}

// record is one recipe as found in the file, before validation. Ingredients
// entries may hold several items separated by commas or line breaks, and
// instruction entries several lines.
type record struct {
	Name         string
	Ingredients  []string
	Instructions []string
	Row          int
}

func validate(records []record) *Result {
	result := &Result{Drafts: make([]model.Draft, 0, len(records))}
	for _, rec := range records {
		draft, err := model.NewDraft(
			rec.Name,
			splitAll(rec.Ingredients, ",\n"),
			splitAll(rec.Instructions, "\n"),
		)
		if err != nil {
			slog.Debug("Skipping invalid recipe", "row", rec.Row, "error", err)
			result.Skipped = append(result.Skipped, RowError{
				Row:  rec.Row,
				Name: strings.TrimSpace(rec.Name),
				Err:  err,
			})
			continue
		}
		result.Drafts = append(result.Drafts, draft)
	}
	return result
}

func splitAll(items []string, seps string) []string {
	var out []string
	for _, item := range items {
		out = append(out, strings.FieldsFunc(item, func(r rune) bool {
			return strings.ContainsRune(seps, r)
		})...)
	}
	return out
}
