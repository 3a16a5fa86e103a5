package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/silence-cli/create-silence/internal/cli/wizard"
	"github.com/silence-cli/create-silence/internal/core/project"
	"github.com/silence-cli/create-silence/internal/template"
	"github.com/silence-cli/create-silence/internal/ui"
	"github.com/silence-cli/create-silence/pkg/models"
)

// Messages printed by the create command.
const (
	msgInvalidTemplate     = "Please input correct template, such as javascript or typescript"
	msgInvalidFramework    = "Please input correct framework, such as vue, react or library"
	msgInvalidPreprocessor = "Please input correct preprocessor, such as sass, less or none"
	msgGoodbye             = "👋 until next time!"
	msgGenerating          = "generating template..."
	msgCreated             = "Create project successfully"
	msgCreateFailed        = "Create project failed"
)

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// parseCreateFlags turns the positional argument and flags into wizard
// options. A non-empty message means a flag was invalid.
func parseCreateFlags(cmd *cobra.Command, args []string, d *Dependencies) (wizard.Options, string) {
	opts := wizard.Options{
		Defaults: wizard.Defaults{
			Framework:    d.Config.Defaults.Framework,
			Language:     d.Config.Defaults.Language,
			Preprocessor: d.Config.Defaults.Preprocessor,
		},
	}
	if len(args) > 0 {
		opts.ProjectName = args[0]
	}

	if v := getStringFlag(cmd, "template"); v != "" {
		lang, err := models.ParseLanguage(v)
		if err != nil {
			return opts, msgInvalidTemplate
		}
		opts.Language = lang
	}
	if v := getStringFlag(cmd, "framework"); v != "" {
		fw, err := models.ParseFramework(v)
		if err != nil {
			return opts, msgInvalidFramework
		}
		opts.Framework = fw
	}
	if v := getStringFlag(cmd, "preprocessor"); v != "" {
		pre, err := models.ParsePreprocessor(v)
		if err != nil {
			return opts, msgInvalidPreprocessor
		}
		opts.Preprocessor = pre
	}
	return opts, ""
}

// @MX:ANCHOR: [AUTO] runCreate drives the prompt, overwrite and materialize sequence
// @MX:REASON: [AUTO] fan_in=2, called from root.go NewRootCmd, create_test.go
// runCreate collects the selection, clears an overwritten directory and
// materializes the template. Graceful stops return nil so the process
// exits with status 0.
func runCreate(cmd *cobra.Command, args []string) error {
	d := deps
	if d == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if getBoolFlag(cmd, "list") {
		return printTemplates(out, d)
	}

	opts, msg := parseCreateFlags(cmd, args, d)
	if msg != "" {
		_, _ = fmt.Fprintln(out, renderError(d.Theme, msg))
		return nil
	}

	sel, err := wizard.Run(ctx, opts, d.Prompter, d.Workspace)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) || errors.Is(err, context.Canceled) {
			_, _ = fmt.Fprintln(out, msgGoodbye)
			return nil
		}
		return err
	}
	d.Logger.Debug("selection resolved",
		"name", sel.TargetName(),
		"framework", sel.Framework,
		"language", sel.Language,
		"preprocessor", sel.Preprocessor,
		"overwrite", sel.OverwriteAccepted(),
	)

	_, _ = fmt.Fprintln(out)
	spin := ui.NewSpinner(d.Theme, d.Headless, out, msgGenerating)

	if sel.OverwriteAccepted() {
		if err := d.Workspace.Remove(sel.ProjectName); err != nil {
			var removeErr *project.RemoveError
			if errors.As(err, &removeErr) {
				spin.Fail(renderError(d.Theme, removeErr.UserMessage()))
				return nil
			}
			spin.Stop()
			return err
		}
	}

	name := sel.TargetName()
	if _, err := d.Materializer.Materialize(ctx, d.Workspace.Path(name), sel); err != nil {
		if errors.Is(err, context.Canceled) {
			// The directory did not exist before this run, drop the partial tree.
			spin.Stop()
			if rmErr := d.Workspace.Remove(name); rmErr != nil {
				d.Logger.Warn("remove partial project", "path", d.Workspace.Path(name), "error", rmErr)
			}
			_, _ = fmt.Fprintln(out, msgGoodbye)
			return nil
		}
		spin.Fail(msgCreateFailed)
		return err
	}
	spin.Succeed(msgCreated + "\n")

	printNextSteps(out, d.Theme, name, sel.Framework)
	return nil
}

// printNextSteps prints the commands to run inside the new project.
func printNextSteps(w io.Writer, theme *ui.Theme, name string, fw models.Framework) {
	steps := []string{"cd " + name, "npm install"}
	if fw.IsApplication() {
		steps = append(steps, "npm run dev")
	}
	for _, step := range steps {
		_, _ = fmt.Fprintln(w, renderStep(theme, step))
	}
	_, _ = fmt.Fprintln(w)
}

// printTemplates renders the available templates as a markdown table.
func printTemplates(w io.Writer, d *Dependencies) error {
	rendered, err := ui.RenderMarkdown(templateTable(d.Materializer.Templates()), d.Theme, d.Headless)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(w, rendered)
	return nil
}

// templateTable builds a markdown table of every selection that resolves to
// one of the available template directories.
func templateTable(available []string) string {
	var b strings.Builder
	b.WriteString("# Templates\n\n")
	b.WriteString("| Template | Framework | Language | Config file |\n")
	b.WriteString("|---|---|---|---|\n")

	seen := make(map[string]bool)
	for _, fw := range models.Frameworks() {
		for _, lang := range models.Languages() {
			sel := &models.Selection{Framework: fw}
			if fw.IsApplication() {
				sel.Language = lang
			}
			desc := template.Resolve(sel)
			if seen[desc.Dir] || !slices.Contains(available, desc.Dir) {
				continue
			}
			seen[desc.Dir] = true

			language, configFile := string(sel.Language), desc.ConfigFile
			if !desc.HasConfig() {
				language, configFile = "-", "-"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", desc.Dir, fw, language, configFile)
		}
	}
	return b.String()
}
