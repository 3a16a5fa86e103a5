package config

import "github.com/silence-cli/create-silence/pkg/models"

// Config is the root of the user configuration file.
type Config struct {
	Defaults     DefaultsConfig `yaml:"defaults"`
	TemplatesDir string         `yaml:"templates_dir"`
	LogLevel     string         `yaml:"log_level"`
	NoColor      bool           `yaml:"no_color"`
}

// DefaultsConfig pre-selects prompt options. Empty values mean "first option".
type DefaultsConfig struct {
	Framework    models.Framework    `yaml:"framework"`
	Language     models.Language     `yaml:"language"`
	Preprocessor models.Preprocessor `yaml:"preprocessor"`
}
