package config

// Default value constants.
const (
	DefaultLogLevel = "warn"
)

// validLogLevels lists accepted log_level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// NewDefaultConfig returns a Config with all defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
	}
}
