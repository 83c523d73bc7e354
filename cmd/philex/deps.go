package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/application/handlers"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/services"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/config"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/relationaldb/sqlite"
)

// withCatalog loads config, opens the SQLite catalog, ensures the schema,
// and runs fn. The catalog is closed when fn returns.
func withCatalog(ctx context.Context, fn func(cfg *config.Config, catalog *sqlite.Repository) error) error {
	cfg, err := config.Load(globalPath)
	if err != nil {
		return err
	}

	path := cfg.CatalogPath(globalPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating catalog directory: %w", err)
	}

	catalog, err := sqlite.NewRepository(config.SQLiteConfig{Path: path})
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer catalog.Close()

	if err := catalog.EnsureSchema(ctx); err != nil {
		return err
	}

	return fn(cfg, catalog)
}

// newLayoutHandler builds both layout engines from config.
func newLayoutHandler(cfg *config.Config, catalog *sqlite.Repository) *handlers.LayoutHandler {
	constellation := services.NewConstellationService(cfg.Constellation.Padding, cfg.Constellation.MinSeparation)
	metro := services.NewMetroService(cfg.Metro.LineDecls())
	metro.SetSpacing(cfg.Metro.MinStationDistance, cfg.Metro.StationOffset)
	return handlers.NewLayoutHandler(catalog, constellation, metro)
}
