package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
)

const (
	defaultFormat        = "table"
	defaultTruncateWidth = 28
	envFormat            = "PROCWIN_FORMAT"
	envTruncateWidth     = "PROCWIN_TRUNCATE"
)

// Config aggregates display defaults that flags can still override.
type Config struct {
	Format        string
	TruncateWidth int
}

// Load builds a Config from an optional JSON file path plus environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		Format:        defaultFormat,
		TruncateWidth: defaultTruncateWidth,
	}

	if path != "" {
		fileCfg, err := loadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		if fileCfg.Format != "" {
			cfg.Format = fileCfg.Format
		}
		if fileCfg.TruncateWidth != 0 {
			cfg.TruncateWidth = fileCfg.TruncateWidth
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envFormat); v != "" {
		cfg.Format = v
	}

	if v := os.Getenv(envTruncateWidth); v != "" {
		if width, err := strconv.Atoi(v); err == nil && width > 0 {
			cfg.TruncateWidth = width
		} else {
			log.Printf("invalid %s value %q", envTruncateWidth, v)
		}
	}
}

type fileConfig struct {
	Format        string `json:"format"`
	TruncateWidth int    `json:"truncate_width"`
}

func loadFromFile(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}

	if raw.TruncateWidth < 0 {
		return cfg, errors.New("truncate_width must be >= 0")
	}

	cfg.Format = raw.Format
	cfg.TruncateWidth = raw.TruncateWidth
	return cfg, nil
}
