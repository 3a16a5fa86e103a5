package wizard

import (
	"context"
	"fmt"

	"github.com/silence-cli/create-silence/pkg/models"
)

// Run resolves a complete Selection. Each step is skipped when opts already
// supplies its answer; every answer is validated before it is accepted.
func Run(ctx context.Context, opts Options, p Prompter, ws Workspace) (*models.Selection, error) {
	sel := &models.Selection{}

	name := NormalizeName(opts.ProjectName)
	if name == "" {
		answer, err := p.Input(ctx, PromptProjectName, "", validateProjectName)
		if err != nil {
			return nil, err
		}
		name = NormalizeName(answer)
	}
	sel.ProjectName = name

	exists, err := ws.Exists(name)
	if err != nil {
		return nil, fmt.Errorf("check project directory: %w", err)
	}
	if exists {
		// Yes is preselected (Y/n).
		overwrite, err := p.Confirm(ctx, PromptOverwrite, true)
		if err != nil {
			return nil, err
		}
		sel.Overwrite = &overwrite

		if !overwrite {
			answer, err := p.Input(ctx, PromptRename, name, renameValidator(name, ws))
			if err != nil {
				return nil, err
			}
			sel.Rename = NormalizeName(answer)
		}
	}

	sel.Framework = opts.Framework
	if sel.Framework == "" {
		answer, err := selectChoice(ctx, p, PromptFramework, models.Frameworks(), opts.Defaults.Framework)
		if err != nil {
			return nil, err
		}
		sel.Framework = answer
	}

	if sel.Framework.IsApplication() {
		sel.Language = opts.Language
		if sel.Language == "" {
			answer, err := selectChoice(ctx, p, PromptLanguage, models.Languages(), opts.Defaults.Language)
			if err != nil {
				return nil, err
			}
			sel.Language = answer
		}

		sel.Preprocessor = opts.Preprocessor
		if sel.Preprocessor == "" {
			answer, err := selectChoice(ctx, p, PromptPreprocessor, models.Preprocessors(), opts.Defaults.Preprocessor)
			if err != nil {
				return nil, err
			}
			sel.Preprocessor = answer
		}
	}

	if err := sel.Validate(); err != nil {
		return nil, fmt.Errorf("wizard: %w", err)
	}
	return sel, nil
}

// selectChoice asks for one value of an enum type.
func selectChoice[T ~string](ctx context.Context, p Prompter, title string, choices []T, def T) (T, error) {
	answer, err := p.Select(ctx, title, models.Strings(choices), string(def))
	if err != nil {
		return "", err
	}
	return T(answer), nil
}
