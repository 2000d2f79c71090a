// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ScanPaths []string `toml:"scan_paths"`
	Workers   int      `toml:"workers"`

	// MaxDepth overrides the per-profile nesting cap when positive.
	MaxDepth int `toml:"max_depth"`

	Exclude Exclude `toml:"exclude"`
	Watch     Watch    `toml:"watch"`
	History   History  `toml:"history"`
	Metrics   Metrics  `toml:"metrics"`
	Tracing   Tracing  `toml:"tracing"`
	Throttle  Throttle `toml:"throttle"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
}

type History struct {
	Path string `toml:"path"`
}

type Metrics struct {
	Addr string `toml:"addr"`
}

type Tracing struct {
	Endpoint string `toml:"endpoint"`
}

// Throttle bounds how many files per second watch mode re-parses; zero
// disables it.
type Throttle struct {
	FilesPerSecond float64 `toml:"files_per_second"`
	Burst          int     `toml:"burst"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.ScanPaths) == 0 {
		cfg.ScanPaths = []string{"."}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if len(cfg.Exclude.Dirs) == 0 {
		cfg.Exclude.Dirs = []string{".git", "node_modules", "vendor"}
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Throttle.FilesPerSecond > 0 && cfg.Throttle.Burst <= 0 {
		cfg.Throttle.Burst = 16
	}
}
