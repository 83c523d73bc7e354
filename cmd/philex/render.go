package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/config"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/relationaldb/sqlite"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/render/svg"
)

func newRenderCmd() *cobra.Command {
	var mode string
	var width, height float64
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a layout as an SVG document",
		Long: `Render the catalog as an SVG document.

Modes:
  star   - the constellation star map
  metro  - the transit map

Examples:
  philex render --mode star -o star.svg
  philex render --mode metro -o metro.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, mode, width, height, output)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "star", "Render mode: "+strings.Join(validModes, " or "))
	cmd.Flags().Float64Var(&width, "width", 0, "Canvas width in pixels (default from config)")
	cmd.Flags().Float64Var(&height, "height", 0, "Canvas height in pixels (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output SVG file (default stdout)")

	return cmd
}

func runRender(cmd *cobra.Command, mode string, width, height float64, output string) error {
	ctx := cmd.Context()

	return withCatalog(ctx, func(cfg *config.Config, catalog *sqlite.Repository) error {
		canvas := resolveCanvas(cfg, width, height)
		layoutHandler := newLayoutHandler(cfg, catalog)
		renderer := svg.NewRenderer(canvas)

		var document string
		switch mode {
		case "star":
			result, err := layoutHandler.HandleStar(ctx, canvas, cfg.Constellation.Iterations)
			if err != nil {
				return fmt.Errorf("computing star layout: %w", err)
			}
			document = renderer.StarMap(result.Philosophers, result.Positions, result.Connections)
		case "metro":
			result, err := layoutHandler.HandleMetro(ctx, canvas)
			if err != nil {
				return fmt.Errorf("computing metro layout: %w", err)
			}
			for _, warning := range result.Warnings {
				fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
			}
			document = renderer.MetroMap(result.Philosophers, result.Layout, cfg.Metro.LineDecls())
		default:
			return fmt.Errorf("unknown render mode %q (expected %s)", mode, strings.Join(validModes, " or "))
		}

		if output == "" {
			fmt.Print(document)
			return nil
		}
		if err := os.WriteFile(output, []byte(document), 0644); err != nil {
			return fmt.Errorf("writing SVG file: %w", err)
		}
		fmt.Printf("Wrote %s\n", output)
		return nil
	})
}
