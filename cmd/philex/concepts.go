package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/application/handlers"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/config"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/relationaldb/sqlite"
)

func newConceptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concepts",
		Short: "List concept themes and their categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withCatalog(ctx, func(cfg *config.Config, catalog *sqlite.Repository) error {
				handler := handlers.NewEntityHandler(catalog)
				concepts, err := handler.HandleConcepts(ctx)
				if err != nil {
					return err
				}

				if len(concepts) == 0 {
					fmt.Println("No concepts stored. Run 'philex import' first.")
					return nil
				}

				fmt.Printf("Concepts (%d total):\n\n", len(concepts))
				for _, c := range concepts {
					fmt.Printf("  %-20s %s\n", c.Name, c.Category)
				}
				return nil
			})
		},
	}
}
