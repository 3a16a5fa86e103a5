package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/silence-cli/create-silence/pkg/models"
)

// Validate checks the configuration for correctness. Empty enum values are
// accepted and mean "no preference".
func Validate(cfg *Config) error {
	var errs []ValidationError

	if f := cfg.Defaults.Framework; f != "" && !f.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "defaults.framework",
			Message: "must be one of: " + strings.Join(models.Strings(models.Frameworks()), ", "),
			Value:   string(f),
			Wrapped: models.ErrInvalidChoice,
		})
	}
	if l := cfg.Defaults.Language; l != "" && !l.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "defaults.language",
			Message: "must be one of: " + strings.Join(models.Strings(models.Languages()), ", "),
			Value:   string(l),
			Wrapped: models.ErrInvalidChoice,
		})
	}
	if p := cfg.Defaults.Preprocessor; p != "" && !p.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "defaults.preprocessor",
			Message: "must be one of: " + strings.Join(models.Strings(models.Preprocessors()), ", "),
			Value:   string(p),
			Wrapped: models.ErrInvalidChoice,
		})
	}
	if cfg.LogLevel != "" && !slices.Contains(validLogLevels, strings.ToLower(cfg.LogLevel)) {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   cfg.LogLevel,
			Wrapped: ErrInvalidConfig,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
