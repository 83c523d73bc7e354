// Package main provides the entry point for the philex CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0-dev"
	globalPath string
)

func main() {
	// Optional .env for PHILEX_* overrides; absence is fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "philex",
		Short:   "Constellation and metro layouts over the history of philosophy",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalPath, "path", "p", ".", "Base path holding the .philex directory")

	rootCmd.AddCommand(
		newInitCmd(),
		newImportCmd(),
		newPhilosophersCmd(),
		newConceptsCmd(),
		newConnectionsCmd(),
		newLayoutCmd(),
		newRenderCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
