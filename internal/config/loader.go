package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/silence-cli/create-silence/internal/defs"
)

// maxConfigSize caps the configuration file size.
const maxConfigSize = 1 << 20 // 1MB

// DefaultPath returns the configuration file location: $CREATE_SILENCE_CONFIG
// when set, otherwise <UserConfigDir>/create-silence/config.yaml.
// An empty string is returned when no user config directory is available.
func DefaultPath() string {
	if p := os.Getenv(defs.ConfigEnvVar); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, defs.ConfigDirName, defs.ConfigFileName)
}

// Load reads the configuration file at path and returns a validated Config
// with defaults applied for missing fields. A missing file or an empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}

	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrConfigTooLarge, path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", filepath.Base(path), ErrInvalidYAML, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.TemplatesDir != "" && !filepath.IsAbs(cfg.TemplatesDir) {
		// Relative template roots are resolved against the config file.
		cfg.TemplatesDir = filepath.Join(filepath.Dir(path), cfg.TemplatesDir)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SlogLevel maps the configured log level onto slog.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
