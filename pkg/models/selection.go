package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by Selection.Validate.
var (
	ErrEmptyProjectName = errors.New("project name is empty")
	ErrRenameUnchanged  = errors.New("rename equals the original project name")
	ErrUnexpectedChoice = errors.New("choice not applicable to framework")
)

// Selection holds every decision needed to materialize one project.
type Selection struct {
	ProjectName  string       // Name given on the command line or prompted
	Overwrite    *bool        // Set only when the target directory already existed
	Rename       string       // Replacement name, only when Overwrite is false
	Framework    Framework    // vue, react or library
	Language     Language     // Empty for library
	Preprocessor Preprocessor // Empty for library
}

// TargetName returns the directory name the project is written to.
func (s *Selection) TargetName() string {
	if s.Overwrite != nil && !*s.Overwrite {
		return s.Rename
	}
	return s.ProjectName
}

// OverwriteAccepted reports whether the existing directory must be removed.
func (s *Selection) OverwriteAccepted() bool {
	return s.Overwrite != nil && *s.Overwrite
}

// Validate checks the selection invariants.
func (s *Selection) Validate() error {
	if strings.TrimSpace(s.ProjectName) == "" {
		return ErrEmptyProjectName
	}
	if s.Overwrite != nil && !*s.Overwrite {
		if strings.TrimSpace(s.Rename) == "" {
			return fmt.Errorf("rename: %w", ErrEmptyProjectName)
		}
		if s.Rename == s.ProjectName {
			return ErrRenameUnchanged
		}
	}
	if !s.Framework.IsValid() {
		return fmt.Errorf("%w: framework %q", ErrInvalidChoice, s.Framework)
	}
	if !s.Framework.IsApplication() {
		if s.Language != "" || s.Preprocessor != "" {
			return fmt.Errorf("%w: %s takes no language or preprocessor", ErrUnexpectedChoice, s.Framework)
		}
		return nil
	}
	if !s.Language.IsValid() {
		return fmt.Errorf("%w: language %q", ErrInvalidChoice, s.Language)
	}
	if !s.Preprocessor.IsValid() {
		return fmt.Errorf("%w: preprocessor %q", ErrInvalidChoice, s.Preprocessor)
	}
	return nil
}
