package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"nanocamo/internal/protocol/camo"
)

// ConfigFilename is the config file looked up inside the home directory.
const ConfigFilename = "config.yaml"

// Environment overrides, applied after the config file.
const (
	EnvLedgerURL   = "NANOCAMO_LEDGER_URL"
	EnvScanWorkers = "NANOCAMO_SCAN_WORKERS"
	EnvLogLevel    = "NANOCAMO_LOG_LEVEL"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the data directory, e.g. $HOME/.nanocamo.
	Home string `yaml:"-"`
	// LedgerURL is the ledger base URL, e.g. http://127.0.0.1:8080.
	LedgerURL   string        `yaml:"ledger_url"`
	LedgerRPS   float64       `yaml:"ledger_rps"`
	LedgerBurst int           `yaml:"ledger_burst"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	// ScanWorkers of 0 means GOMAXPROCS.
	ScanWorkers int `yaml:"scan_workers"`
	ScanBatch   int `yaml:"scan_batch"`
	// Versions lists the camo versions new accounts accept and senders use.
	Versions []int  `yaml:"versions"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in settings for home.
func DefaultConfig(home string) Config {
	return Config{
		Home:        home,
		LedgerURL:   "http://127.0.0.1:8080",
		LedgerRPS:   10,
		LedgerBurst: 5,
		HTTPTimeout: 15 * time.Second,
		ScanBatch:   200,
		Versions:    []int{1},
		LogLevel:    "info",
	}
}

// LoadConfig reads <home>/config.yaml over the defaults, then applies
// environment overrides. A missing file is not an error.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)

	data, err := os.ReadFile(filepath.Join(home, ConfigFilename))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", ConfigFilename, err)
		}
		merge(&cfg, file)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func merge(dst *Config, src Config) {
	if src.LedgerURL != "" {
		dst.LedgerURL = src.LedgerURL
	}
	if src.LedgerRPS != 0 {
		dst.LedgerRPS = src.LedgerRPS
	}
	if src.LedgerBurst != 0 {
		dst.LedgerBurst = src.LedgerBurst
	}
	if src.HTTPTimeout != 0 {
		dst.HTTPTimeout = src.HTTPTimeout
	}
	if src.ScanWorkers != 0 {
		dst.ScanWorkers = src.ScanWorkers
	}
	if src.ScanBatch != 0 {
		dst.ScanBatch = src.ScanBatch
	}
	if src.Versions != nil {
		dst.Versions = src.Versions
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvLedgerURL)); v != "" {
		cfg.LedgerURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvScanWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvScanWorkers, err)
		}
		cfg.ScanWorkers = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// Validate rejects settings that cannot work.
func (c Config) Validate() error {
	if c.LedgerRPS <= 0 {
		return fmt.Errorf("config: ledger_rps must be positive")
	}
	if c.ScanWorkers < 0 || c.ScanBatch < 0 || c.LedgerBurst < 0 {
		return fmt.Errorf("config: scan_workers, scan_batch and ledger_burst must not be negative")
	}
	if _, err := c.CamoVersions(); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// CamoVersions converts the configured version numbers into a set.
func (c Config) CamoVersions() (camo.Versions, error) {
	var out camo.Versions
	for _, n := range c.Versions {
		v := camo.Version(n)
		if n < 1 || n > camo.VersionCount || !v.Valid() {
			return camo.Versions{}, fmt.Errorf("config: unknown camo version %d", n)
		}
		out = out.Insert(v)
	}
	if out.IsEmpty() {
		return camo.Versions{}, fmt.Errorf("config: versions must not be empty")
	}
	return out, nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return l, nil
}

// NewLogger returns a text logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SaveConfig writes c to <home>/config.yaml unless one already exists.
func SaveConfig(c Config) error {
	path := filepath.Join(c.Home, ConfigFilename)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
