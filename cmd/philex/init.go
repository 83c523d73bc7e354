package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a .philex directory with the default configuration",
		Long: `Create a .philex directory with the default configuration.

The defaults include the canvas size, the constellation force tuning, and
the declared metro lines. Commands work without an explicit config file;
init exists so the defaults can be inspected and edited.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(globalPath); err != nil {
				return fmt.Errorf("initializing config: %w", err)
			}
			fmt.Printf("Created %s\n", config.ConfigFilePath(globalPath))
			return nil
		},
	}
}
