package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the generator run configuration.
type Config struct {
	Seed          int64  `yaml:"seed"`
	GeneratorType string `yaml:"generator_type"` // "default" or "flat"
	FlatHeight    int    `yaml:"flat_height"`
	FlatBiome     string `yaml:"flat_biome"`
	Dimension     string `yaml:"dimension"`
	Radius        int    `yaml:"radius"` // region to generate, in chunks around the origin

	PocketsFile    string `yaml:"pockets_file"`
	PocketsEnabled bool   `yaml:"pockets_enabled"`

	OutDir    string `yaml:"out_dir"`
	IndexPath string `yaml:"index_path"` // empty = no index
	RegionDir string `yaml:"region_dir"` // empty = no Anvil export
	LogLevel  string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		GeneratorType:  "default",
		FlatHeight:     100,
		FlatBiome:      "plains",
		Dimension:      "overworld",
		Radius:         4,
		PocketsFile:    "configs/pockets.yaml",
		PocketsEnabled: true,
		OutDir:         "out",
		LogLevel:       "info",
	}
}

// Load reads a YAML config file over a copy of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.GeneratorType = fromFile.GeneratorType
	}
	if !explicitFlags["flat-height"] {
		cfg.FlatHeight = fromFile.FlatHeight
	}
	if !explicitFlags["flat-biome"] {
		cfg.FlatBiome = fromFile.FlatBiome
	}
	if !explicitFlags["dimension"] {
		cfg.Dimension = fromFile.Dimension
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["pockets"] {
		cfg.PocketsFile = fromFile.PocketsFile
	}
	if !explicitFlags["pockets-enabled"] {
		cfg.PocketsEnabled = fromFile.PocketsEnabled
	}
	if !explicitFlags["out"] {
		cfg.OutDir = fromFile.OutDir
	}
	if !explicitFlags["index"] {
		cfg.IndexPath = fromFile.IndexPath
	}
	if !explicitFlags["region"] {
		cfg.RegionDir = fromFile.RegionDir
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
