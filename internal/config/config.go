// Package config loads the optional potluck.yaml settings file and applies
// environment overrides (optionally sourced from a .env file).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/potluck-dev/potluck/internal/ledgerfile"
)

// DefaultPath is where Load looks for the settings file.
const DefaultPath = "potluck.yaml"

// Environment variable overrides.
const (
	EnvLedgerFile = "POTLUCK_LEDGER_FILE"
	EnvWatchMS    = "POTLUCK_WATCH_INTERVAL_MS"
	EnvLogLevel   = "POTLUCK_LOG_LEVEL"
)

// Config represents the potluck.yaml file.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Watch   WatchConfig   `yaml:"watch"`
	Display DisplayConfig `yaml:"display"`
}

// LedgerConfig locates the operation log.
type LedgerConfig struct {
	File string `yaml:"file"`
}

// WatchConfig controls the watch polling loop.
type WatchConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// DisplayConfig controls terminal rendering.
type DisplayConfig struct {
	Style string `yaml:"style"` // glamour style name, "auto" by default
}

// Default returns the configuration used when no potluck.yaml exists.
func Default() *Config {
	return &Config{
		Ledger:  LedgerConfig{File: ledgerfile.DefaultFile},
		Watch:   WatchConfig{IntervalMS: 250},
		Display: DisplayConfig{Style: "auto"},
	}
}

// Load reads path if it exists (defaults apply otherwise), loads a .env file
// when present, and applies environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Settings file is optional.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	// .env is a convenience for the overrides below; a missing file is fine.
	_ = godotenv.Load()

	if file := os.Getenv(EnvLedgerFile); file != "" {
		cfg.Ledger.File = file
	}
	if ms := os.Getenv(EnvWatchMS); ms != "" {
		interval, err := strconv.Atoi(ms)
		if err != nil {
			return nil, fmt.Errorf("parsing %s=%q: %w", EnvWatchMS, ms, err)
		}
		cfg.Watch.IntervalMS = interval
	}

	if cfg.Ledger.File == "" {
		cfg.Ledger.File = ledgerfile.DefaultFile
	}
	if cfg.Watch.IntervalMS <= 0 {
		cfg.Watch.IntervalMS = 250
	}
	if cfg.Display.Style == "" {
		cfg.Display.Style = "auto"
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// WatchInterval returns the polling period for watch mode.
func (c *Config) WatchInterval() time.Duration {
	return time.Duration(c.Watch.IntervalMS) * time.Millisecond
}
