package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/silence-cli/create-silence/internal/defs"
	"github.com/silence-cli/create-silence/internal/ui"
	"github.com/silence-cli/create-silence/pkg/version"
)

// NewRootCmd builds the create-silence command. The root command is the
// create command itself; there are no subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-silence [projectName]",
		Short: "Scaffold a new silence project from a template",
		Long: `create-silence asks for a project name, a framework, a language and a
CSS preprocessor, then creates the project from the matching template.

Examples:
  create-silence                         Answer every question interactively
  create-silence my-app                  Use my-app as the project name
  create-silence my-app --template typescript --framework vue
  create-silence --list                  Show the available templates`,
		Args:              cobra.MaximumNArgs(1),
		Version:           version.GetVersion(),
		PersistentPreRunE: ensureDependencies,
		RunE:              runCreate,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("create-silence %s\n", version.GetVersion()))

	cmd.Flags().StringP("template", "t", "", "Language variant: javascript or typescript")
	cmd.Flags().StringP("framework", "f", "", "Framework: vue, react or library")
	cmd.Flags().StringP("preprocessor", "p", "", "CSS preprocessor: sass, less or none")
	cmd.Flags().Bool("list", false, "List the available templates and exit")
	cmd.Flags().Bool("verbose", false, "Write debug logs to stderr")
	cmd.Flags().String("config", "", "Config file (default: $"+defs.ConfigEnvVar+" or the user config directory)")

	return cmd
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the create-silence CLI
// @MX:REASON: [AUTO] fan_in=1, called from cmd/create-silence/main.go
// Execute runs the root command. Unexpected errors are printed here and
// returned so that main can exit with status 1.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCmd()
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		reportError(cmd.ErrOrStderr(), currentTheme(), err)
	}
	return err
}

// reportError prints the generic failure line for err.
func reportError(w io.Writer, theme *ui.Theme, err error) {
	_, _ = fmt.Fprintln(w, renderError(theme, "An error occurred: "+err.Error()))
}

// currentTheme returns the theme of the wired dependencies, falling back to
// the default theme when wiring never happened.
func currentTheme() *ui.Theme {
	if deps != nil && deps.Theme != nil {
		return deps.Theme
	}
	return ui.NewTheme()
}
