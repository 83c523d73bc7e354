package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/application/handlers"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/config"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/relationaldb/sqlite"
)

func newConnectionsCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "connections",
		Short: "List derived connections between philosophers",
		Long: `List the connections derived from the catalog.

Shared-concept edges chain philosophers carrying the same concept in
chronological order; influence edges follow explicit teacher → student
references. Edges are recomputed from the dataset on every call.

Examples:
  philex connections
  philex connections --kind influence`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnections(cmd, kind)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind: shared-concept or influence")

	return cmd
}

func runConnections(cmd *cobra.Command, kind string) error {
	ctx := cmd.Context()

	return withCatalog(ctx, func(cfg *config.Config, catalog *sqlite.Repository) error {
		handler := handlers.NewGraphHandler(catalog)
		result, err := handler.HandleConnections(ctx, kind)
		if err != nil {
			return fmt.Errorf("deriving connections: %w", err)
		}

		if len(result.Connections) == 0 {
			fmt.Println("No connections found.")
			return nil
		}

		fmt.Printf("Connections (%d shared-concept, %d influence):\n\n", result.Shared, result.Influence)
		for _, conn := range result.Connections {
			if conn.Kind == entities.ConnectionSharedConcept {
				fmt.Printf("  %s -> %s  via %s (%s)\n", conn.From, conn.To, conn.Concept, conn.Category)
			} else {
				fmt.Printf("  %s -> %s  influence\n", conn.From, conn.To)
			}
		}
		return nil
	})
}
