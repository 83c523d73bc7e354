package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/application/handlers"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/config"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/relationaldb/sqlite"
)

func newImportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a philosopher dataset into the catalog",
		Long: `Import a philosopher dataset into the catalog.

Supported formats: JSON, CSV, YAML (derived from the file extension, or
forced with --format). Records are validated best-effort: missing ids get
generated, unknown eras are derived from the year, and year labels that
cannot be parsed are imported with a warning.

Examples:
  philex import dataset.json
  philex import thinkers.csv --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Dataset format: json, csv, or yaml")

	return cmd
}

func runImport(cmd *cobra.Command, path, format string) error {
	ctx := cmd.Context()

	return withCatalog(ctx, func(cfg *config.Config, catalog *sqlite.Repository) error {
		handler := handlers.NewImportHandler(catalog)
		result, err := handler.HandleFile(ctx, path, format)
		if err != nil {
			return fmt.Errorf("importing dataset: %w", err)
		}

		fmt.Printf("Imported %d philosophers", result.Imported)
		if result.Concepts > 0 {
			fmt.Printf(", %d concepts", result.Concepts)
		}
		if result.Skipped > 0 {
			fmt.Printf(" (%d records skipped)", result.Skipped)
		}
		fmt.Println()

		for _, warning := range result.Warnings {
			fmt.Printf("  warning: %s\n", warning)
		}
		return nil
	})
}
