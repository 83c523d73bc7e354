package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/application/handlers"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/services"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/config"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/relationaldb/sqlite"
)

func newPhilosophersCmd() *cobra.Command {
	var searchQuery string
	var limit int

	cmd := &cobra.Command{
		Use:   "philosophers",
		Short: "List philosophers in the catalog",
		Long: `List all philosophers in the catalog, in chronological order.

Use --search to filter by name.

Examples:
  philex philosophers
  philex philosophers --search "Kant"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPhilosophers(cmd, searchQuery, limit)
		},
	}

	cmd.Flags().StringVar(&searchQuery, "search", "", "Search philosophers by name")
	cmd.Flags().IntVar(&limit, "limit", DefaultSearchLimit, "Maximum number of search results")

	return cmd
}

func runPhilosophers(cmd *cobra.Command, searchQuery string, limit int) error {
	ctx := cmd.Context()

	return withCatalog(ctx, func(cfg *config.Config, catalog *sqlite.Repository) error {
		handler := handlers.NewEntityHandler(catalog)

		var result *handlers.EntityListResult
		var err error
		if searchQuery != "" {
			result, err = handler.HandleSearch(ctx, searchQuery, limit)
		} else {
			result, err = handler.HandleList(ctx)
		}
		if err != nil {
			return fmt.Errorf("listing philosophers: %w", err)
		}

		if len(result.Philosophers) == 0 {
			fmt.Println("No philosophers found.")
			return nil
		}

		fmt.Printf("Philosophers (%d total):\n\n", result.Total)
		for _, p := range result.Philosophers {
			fmt.Printf("  %-10s %-28s %-14s %s\n",
				services.FormatYear(p.NumericYear), p.Title, p.Era,
				strings.Join(p.Concepts, ", "))
		}

		if len(result.EraCounts) > 0 {
			var summary []string
			for _, era := range entities.Eras {
				if count := result.EraCounts[era]; count > 0 {
					summary = append(summary, fmt.Sprintf("%s %d", era, count))
				}
			}
			fmt.Printf("\nBy era: %s\n", strings.Join(summary, ", "))
		}
		return nil
	})
}
