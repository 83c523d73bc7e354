package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1200.0, cfg.Canvas.Width)
	assert.Equal(t, 800.0, cfg.Canvas.Height)
	assert.Equal(t, 15, cfg.Constellation.Iterations)
	assert.Equal(t, 50.0, cfg.Constellation.Padding)
	assert.Equal(t, 40.0, cfg.Constellation.MinSeparation)
	assert.Equal(t, 60.0, cfg.Metro.MinStationDistance)
	assert.Equal(t, 25.0, cfg.Metro.StationOffset)
	assert.Len(t, cfg.Metro.Lines, 7)
	assert.Equal(t, "Metaphysics", cfg.Metro.Lines[0].Concept)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, Default().Canvas, cfg.Canvas)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	content := `canvas:
  width: 1600
  height: 900
constellation:
  iterations: 30
metro:
  min_station_distance: 80
`
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1600.0, cfg.Canvas.Width)
	assert.Equal(t, 900.0, cfg.Canvas.Height)
	assert.Equal(t, 30, cfg.Constellation.Iterations)
	assert.Equal(t, 80.0, cfg.Metro.MinStationDistance)
	// Values the file does not mention keep their defaults.
	assert.Equal(t, 50.0, cfg.Constellation.Padding)
	assert.Equal(t, 25.0, cfg.Metro.StationOffset)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("canvas: [not a map"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PHILEX_DB", "/tmp/elsewhere.db")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/elsewhere.db", cfg.SQLite.Path)
	assert.Equal(t, "/tmp/elsewhere.db", cfg.CatalogPath("/ignored"))
}

func TestCatalogPathDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("base", DefaultConfigDir, DefaultCatalogFile), cfg.CatalogPath("base"))
}

func TestLineDecls(t *testing.T) {
	m := MetroConfig{Lines: []LineConfig{
		{Concept: "Ethics", Color: "#2a9d8f"},
		{Concept: ""},
		{Concept: "Logic", Label: "Reasoning Line"},
	}}

	decls := m.LineDecls()
	require.Len(t, decls, 2, "empty concepts skipped")
	assert.Equal(t, "Ethics Line", decls[0].Label, "missing label synthesized")
	assert.Equal(t, "Reasoning Line", decls[1].Label)
}

func TestWriteDefaultAndExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Exists(dir))

	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default().Canvas, cfg.Canvas)

	assert.Error(t, WriteDefault(dir), "refuses to clobber an existing config")
}
