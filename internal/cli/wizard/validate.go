package wizard

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Validation messages shown next to the name prompts.
const (
	msgNameEmpty     = "Project name cannot be empty!"
	msgNameUnchanged = "Please change the project name"
	msgNameTaken     = "The directory already exists, please change the project name"
)

// NormalizeName trims surrounding whitespace and converts name to Unicode
// NFC so that visually identical names compare equal.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

func validateProjectName(value string) error {
	if NormalizeName(value) == "" {
		return errors.New(msgNameEmpty)
	}
	return nil
}

// renameValidator rejects an empty rename, the original name and any other
// directory that already exists.
func renameValidator(original string, ws Workspace) func(string) error {
	return func(value string) error {
		name := NormalizeName(value)
		if name == "" {
			return errors.New(msgNameEmpty)
		}
		if name == original {
			return errors.New(msgNameUnchanged)
		}
		exists, err := ws.Exists(name)
		if err != nil {
			return fmt.Errorf("check %s: %w", name, err)
		}
		if exists {
			return errors.New(msgNameTaken)
		}
		return nil
	}
}
