// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for philex configuration.
	DefaultConfigDir = ".philex"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultCatalogFile is the default SQLite catalog file name.
	DefaultCatalogFile = "catalog.db"
)

// Config holds static layout and storage configuration (read-only after
// load).
type Config struct {
	Canvas        CanvasConfig        `yaml:"canvas,omitempty"`
	Constellation ConstellationConfig `yaml:"constellation,omitempty"`
	Metro         MetroConfig         `yaml:"metro,omitempty"`
	SQLite        SQLiteConfig        `yaml:"sqlite,omitempty"`
}

// CanvasConfig holds the default drawing surface dimensions, used when the
// caller does not supply its own measurement.
type CanvasConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// ConstellationConfig tunes the star-map force relaxation.
type ConstellationConfig struct {
	Iterations    int     `yaml:"iterations,omitempty"`
	Padding       float64 `yaml:"padding,omitempty"`
	MinSeparation float64 `yaml:"min_separation,omitempty"`
}

// MetroConfig tunes the transit-map layout. Lines are declared in priority
// order; the first declared line is the fallback for philosophers matching
// none.
type MetroConfig struct {
	Lines              []LineConfig `yaml:"lines,omitempty"`
	MinStationDistance float64      `yaml:"min_station_distance,omitempty"`
	StationOffset      float64      `yaml:"station_offset,omitempty"`
}

// LineConfig declares one metro line.
type LineConfig struct {
	Concept string `yaml:"concept"`
	Label   string `yaml:"label,omitempty"`
	Color   string `yaml:"color,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite catalog.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database. Empty means the
	// default path under the .philex directory.
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	cfg := &Config{
		Canvas: CanvasConfig{
			Width:  1200,
			Height: 800,
		},
		Constellation: ConstellationConfig{
			Iterations:    15,
			Padding:       50,
			MinSeparation: 40,
		},
		Metro: MetroConfig{
			MinStationDistance: 60,
			StationOffset:      25,
		},
	}
	for _, line := range entities.DefaultMetroLines {
		cfg.Metro.Lines = append(cfg.Metro.Lines, LineConfig{
			Concept: line.Concept,
			Label:   line.Label,
			Color:   line.Color,
		})
	}
	return cfg
}

// Load loads configuration from the .philex directory in the given path.
// A missing config file yields the defaults; only a malformed file is an
// error.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("PHILEX_DB"); path != "" {
		c.SQLite.Path = path
	}
}

// LineDecls converts the declared lines to domain line declarations,
// preserving priority order.
func (m MetroConfig) LineDecls() []entities.LineDecl {
	decls := make([]entities.LineDecl, 0, len(m.Lines))
	for _, line := range m.Lines {
		if line.Concept == "" {
			continue
		}
		label := line.Label
		if label == "" {
			label = line.Concept + " Line"
		}
		decls = append(decls, entities.LineDecl{
			Concept: line.Concept,
			Label:   label,
			Color:   line.Color,
		})
	}
	return decls
}

// ConfigDir returns the path to the .philex config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// CatalogPath returns the SQLite catalog path, honoring an explicit
// override from the config file or environment.
func (c *Config) CatalogPath(basePath string) string {
	if c.SQLite.Path != "" {
		return c.SQLite.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, DefaultCatalogFile)
}

// Exists checks if a philex config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
