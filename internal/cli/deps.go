// Package cli provides the cobra command and dependency wiring for the
// create-silence CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/silence-cli/create-silence/internal/cli/wizard"
	"github.com/silence-cli/create-silence/internal/config"
	"github.com/silence-cli/create-silence/internal/core/project"
	"github.com/silence-cli/create-silence/internal/template"
	"github.com/silence-cli/create-silence/internal/ui"
	"github.com/silence-cli/create-silence/pkg/version"
)

// Dependencies holds every service used by the create command.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config       *config.Config
	Logger       *slog.Logger
	Workspace    *project.Workspace
	Materializer template.Materializer
	Prompter     wizard.Prompter
	Headless     *ui.HeadlessManager
	Theme        *ui.Theme
}

// deps is the global dependencies instance, initialized before the command
// runs unless a test installed its own through SetDeps.
var deps *Dependencies

// InitOptions are the command line inputs that influence wiring.
type InitOptions struct {
	ConfigPath string    // Explicit --config path, empty for the default lookup
	Verbose    bool      // Force debug logging
	LogOutput  io.Writer // Destination of log records
}

// @MX:ANCHOR: [AUTO] InitDependencies is the Composition Root that wires all domain modules
// @MX:REASON: [AUTO] fan_in=2, called from deps.go ensureDependencies, create_test.go
// InitDependencies loads the configuration and wires the workspace,
// template materializer, prompter and UI for the current directory.
func InitDependencies(opts InitOptions) (*Dependencies, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logOut := opts.LogOutput
	if logOut == nil {
		logOut = os.Stderr
	}
	level := cfg.SlogLevel()
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	logger.Debug("config loaded", "path", path, "templates_dir", cfg.TemplatesDir)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	src, err := templateSource(cfg)
	if err != nil {
		return nil, err
	}

	theme := ui.NewTheme()
	if cfg.NoColor || os.Getenv("NO_COLOR") != "" {
		theme = ui.NewNoColorTheme()
	}
	headless := ui.NewHeadlessManager()

	osFs := afero.NewOsFs()
	workspace := project.NewWorkspace(osFs, cwd, logger)
	logger.Debug("dependencies wired",
		"version", version.GetFullVersion(),
		"workspace", workspace.Root(),
	)
	return &Dependencies{
		Config:       cfg,
		Logger:       logger,
		Workspace:    workspace,
		Materializer: template.NewMaterializer(src, osFs, logger),
		Prompter: wizard.HuhPrompter{
			Accessible: headless.IsHeadless(),
			NoColor:    theme.NoColor,
		},
		Headless: headless,
		Theme:    theme,
	}, nil
}

// templateSource returns the configured on-disk template root or the
// templates embedded in the binary.
func templateSource(cfg *config.Config) (fs.FS, error) {
	if cfg.TemplatesDir == "" {
		return template.EmbeddedTemplates()
	}
	info, err := os.Stat(cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("templates_dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates_dir %s: %w", cfg.TemplatesDir, config.ErrInvalidConfig)
	}
	return os.DirFS(cfg.TemplatesDir), nil
}

// ensureDependencies wires dependencies from the parsed flags unless they
// are already set.
func ensureDependencies(cmd *cobra.Command, _ []string) error {
	if deps != nil {
		return nil
	}
	d, err := InitDependencies(InitOptions{
		ConfigPath: getStringFlag(cmd, "config"),
		Verbose:    getBoolFlag(cmd, "verbose"),
		LogOutput:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	deps = d
	return nil
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
