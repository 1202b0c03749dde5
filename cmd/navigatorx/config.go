package main

import (
	"fmt"
	"os"

	"lintang/roadgraph/pkg/engine/routingalgorithm"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr       string  `yaml:"listen-addr"`
	MapFile          string  `yaml:"map-file"`
	LogLevel         string  `yaml:"log-level"`
	DefaultAlgorithm string  `yaml:"default-algorithm"`
	SnapRadiusKm     float64 `yaml:"snap-radius-km"`
	H3Resolution     int     `yaml:"h3-resolution"`
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:       ":5000",
		MapFile:          "solo_jogja.osm.pbf",
		LogLevel:         "info",
		DefaultAlgorithm: routingalgorithm.AlgorithmAStar.String(),
		SnapRadiusKm:     1.0,
		H3Resolution:     9,
	}
}

// ReadConfig field yang tidak ada di file tetap pakai nilai dari base
func ReadConfig(file string, base Config) (Config, error) {
	slog.Info("Reading config file", "file", file)
	data, err := os.ReadFile(file)
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}
	config := base
	if err := yaml.Unmarshal(data, &config); err != nil {
		return base, fmt.Errorf("failed to parse config file %s: %w", file, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen-addr is empty")
	}
	if c.MapFile == "" {
		return fmt.Errorf("map-file is empty")
	}
	if _, err := routingalgorithm.ParseAlgorithm(c.DefaultAlgorithm); err != nil {
		return err
	}
	if c.SnapRadiusKm <= 0 {
		return fmt.Errorf("snap-radius-km must be positive, got %v", c.SnapRadiusKm)
	}
	if c.H3Resolution < 0 || c.H3Resolution > 15 {
		return fmt.Errorf("h3-resolution must be in [0, 15], got %d", c.H3Resolution)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log-level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
