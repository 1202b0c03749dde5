package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestReadConfig(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		file := writeConfig(t, `
listen-addr: ":6000"
log-level: debug
default-algorithm: dijkstra
snap-radius-km: 0.25
`)
		cfg, err := ReadConfig(file, DefaultConfig())
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		assert.Equal(t, ":6000", cfg.ListenAddr)
		assert.Equal(t, "solo_jogja.osm.pbf", cfg.MapFile)
		assert.Equal(t, "dijkstra", cfg.DefaultAlgorithm)
		assert.Equal(t, 0.25, cfg.SnapRadiusKm)
		assert.Equal(t, 9, cfg.H3Resolution)

		level, err := cfg.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yaml"), DefaultConfig())
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ReadConfig(writeConfig(t, "listen-addr: [unclosed"), DefaultConfig())
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cases := map[string]func(c *Config){
		"unknown algorithm": func(c *Config) { c.DefaultAlgorithm = "greedy" },
		"zero snap radius":  func(c *Config) { c.SnapRadiusKm = 0 },
		"h3 resolution":     func(c *Config) { c.H3Resolution = 16 },
		"log level":         func(c *Config) { c.LogLevel = "loud" },
		"empty map file":    func(c *Config) { c.MapFile = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
