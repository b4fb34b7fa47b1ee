// Package config loads clocklog settings from an optional YAML file and
// CLOCKLOG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/clocklog/internal/domain"
	"gopkg.in/yaml.v3"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendYAML   Backend = "yaml"
	BackendSQLite Backend = "sqlite"
)

// Config holds all runtime settings.
type Config struct {
	Backend     Backend `yaml:"backend"`
	StorePath   string  `yaml:"store"`
	WeekStart   string  `yaml:"week_start"`
	LogLevel    string  `yaml:"log_level"`
	LogUseCases bool    `yaml:"log_use_cases"`
}

// DataDir returns ~/.clocklog, or CLOCKLOG_HOME when set.
func DataDir() (string, error) {
	if dir := os.Getenv("CLOCKLOG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".clocklog"), nil
}

// DefaultConfig returns the YAML backend in dataDir with Monday weeks.
func DefaultConfig(dataDir string) Config {
	return Config{
		Backend:   BackendYAML,
		StorePath: filepath.Join(dataDir, "activities.yaml"),
		WeekStart: "monday",
		LogLevel:  "warn",
	}
}

// Load starts from DefaultConfig, overlays the YAML file at path when it
// exists and then applies environment overrides. An empty path skips the
// file.
func Load(path, dataDir string) (Config, error) {
	cfg := DefaultConfig(dataDir)

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.Backend == BackendSQLite && filepath.Ext(cfg.StorePath) == ".yaml" {
		cfg.StorePath = strings.TrimSuffix(cfg.StorePath, ".yaml") + ".db"
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) {
	cfg.Backend = Backend(domain.CoalesceStr(os.Getenv("CLOCKLOG_BACKEND"), string(cfg.Backend)))
	cfg.StorePath = domain.CoalesceStr(os.Getenv("CLOCKLOG_STORE"), cfg.StorePath)
	cfg.WeekStart = domain.CoalesceStr(os.Getenv("CLOCKLOG_WEEK_START"), cfg.WeekStart)
	cfg.LogLevel = domain.CoalesceStr(os.Getenv("CLOCKLOG_LOG_LEVEL"), cfg.LogLevel)
	if v := os.Getenv("CLOCKLOG_LOG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
}

// Validate checks every field can be used.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendYAML, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want yaml or sqlite)", c.Backend)
	}
	if c.StorePath == "" {
		return fmt.Errorf("store path is empty")
	}
	if _, err := ParseWeekday(c.WeekStart); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// FirstWeekday returns the configured first day of the week.
func (c Config) FirstWeekday() time.Weekday {
	d, err := ParseWeekday(c.WeekStart)
	if err != nil {
		return time.Monday
	}
	return d
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// ParseWeekday accepts English weekday names and three-letter abbreviations,
// case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Monday, fmt.Errorf("invalid week start %q", s)
}
