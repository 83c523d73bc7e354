package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/application/handlers"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/config"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/relationaldb/sqlite"
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute a layout and export it as JSON",
	}

	cmd.AddCommand(newLayoutStarCmd(), newLayoutMetroCmd())
	return cmd
}

func newLayoutStarCmd() *cobra.Command {
	var width, height float64
	var iterations int
	var output string

	cmd := &cobra.Command{
		Use:   "star",
		Short: "Compute the constellation (star map) layout",
		Long: `Compute the constellation layout: time on the X axis, concept
affinity pulling related thinkers together on Y. The output is a JSON
snapshot of positions and connections for a presentation layer.

Examples:
  philex layout star
  philex layout star --width 1600 --height 900 -o star.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withCatalog(ctx, func(cfg *config.Config, catalog *sqlite.Repository) error {
				canvas := resolveCanvas(cfg, width, height)
				if iterations < 0 {
					iterations = cfg.Constellation.Iterations
				}

				result, err := newLayoutHandler(cfg, catalog).HandleStar(ctx, canvas, iterations)
				if err != nil {
					return fmt.Errorf("computing star layout: %w", err)
				}
				return writeExport(output, func(f *os.File) error {
					return handlers.NewExportHandler().HandleStar(f, result)
				})
			})
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "Canvas width in pixels (default from config)")
	cmd.Flags().Float64Var(&height, "height", 0, "Canvas height in pixels (default from config)")
	cmd.Flags().IntVar(&iterations, "iterations", -1, "Relaxation iterations (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func newLayoutMetroCmd() *cobra.Command {
	var width, height float64
	var output string

	cmd := &cobra.Command{
		Use:   "metro",
		Short: "Compute the transit-map (metro) layout",
		Long: `Compute the metro layout: declared concepts become horizontal
lines, philosophers become time-ordered stations, multi-line thinkers
become interchanges. The output is a JSON snapshot of stations, line
paths, and interchanges.

Examples:
  philex layout metro
  philex layout metro -o metro.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withCatalog(ctx, func(cfg *config.Config, catalog *sqlite.Repository) error {
				canvas := resolveCanvas(cfg, width, height)

				result, err := newLayoutHandler(cfg, catalog).HandleMetro(ctx, canvas)
				if err != nil {
					return fmt.Errorf("computing metro layout: %w", err)
				}
				for _, warning := range result.Warnings {
					fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
				}
				return writeExport(output, func(f *os.File) error {
					return handlers.NewExportHandler().HandleMetro(f, result)
				})
			})
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "Canvas width in pixels (default from config)")
	cmd.Flags().Float64Var(&height, "height", 0, "Canvas height in pixels (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

// resolveCanvas applies flag overrides on top of the configured canvas.
func resolveCanvas(cfg *config.Config, width, height float64) entities.CanvasSize {
	canvas := entities.CanvasSize{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}
	if width > 0 {
		canvas.Width = width
	}
	if height > 0 {
		canvas.Height = height
	}
	return canvas
}

// writeExport runs the export against a file or stdout.
func writeExport(output string, export func(*os.File) error) error {
	if output == "" {
		return export(os.Stdout)
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	if err := export(f); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", output)
	return nil
}
