// Package wizard collects the project scaffolding choices, asking only the
// questions that command line flags have not already answered.
package wizard

import (
	"context"
	"errors"

	"github.com/silence-cli/create-silence/pkg/models"
)

// ErrCancelled is returned when the user aborts any prompt.
var ErrCancelled = errors.New("wizard cancelled by user")

// Prompt texts shown to the user.
const (
	PromptProjectName  = "Input the project name"
	PromptOverwrite    = "The directory already exists, do you want to overwrite it"
	PromptRename       = "Please edit the project name"
	PromptFramework    = "Select a framework"
	PromptLanguage     = "Select the language type"
	PromptPreprocessor = "Select css preprocessor"
)

// Prompter asks single questions. Implementations return ErrCancelled when
// the user aborts.
type Prompter interface {
	// Input asks for free text. Value prefills the field and validate, when
	// non-nil, must accept the answer before it is returned.
	Input(ctx context.Context, title, value string, validate func(string) error) (string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, title string, def bool) (bool, error)

	// Select asks for one of options. def is preselected when it is one of
	// the options.
	Select(ctx context.Context, title string, options []string, def string) (string, error)
}

// Workspace reports whether a project directory already exists.
type Workspace interface {
	Exists(name string) (bool, error)
}

// Defaults preselect answers in the select prompts. They never skip a
// question.
type Defaults struct {
	Framework    models.Framework
	Language     models.Language
	Preprocessor models.Preprocessor
}

// Options carries the answers already given on the command line.
type Options struct {
	ProjectName  string              // Positional argument, may be blank
	Framework    models.Framework    // --framework, empty when not given
	Language     models.Language     // --template, empty when not given
	Preprocessor models.Preprocessor // --preprocessor, empty when not given
	Defaults     Defaults
}
