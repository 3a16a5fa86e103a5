package template

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/silence-cli/create-silence/internal/defs"
	"github.com/silence-cli/create-silence/pkg/models"
)

// @MX:ANCHOR: [AUTO] Materializer is the single write path from a template root into a new project.
// @MX:REASON: [AUTO] fan_in=3, called from cli/create.go, materializer_test.go, create_test.go
// Materializer copies a template tree into a project directory, computing
// package.json and the silence config file instead of copying them.
type Materializer interface {
	// Materialize writes the template chosen by sel into projectRoot.
	// The context is checked before each file.
	Materialize(ctx context.Context, projectRoot string, sel *models.Selection) (*Result, error)

	// Templates returns the sorted names of all available templates.
	Templates() []string
}

// Result summarizes a materialization.
type Result struct {
	Template     string   // Template directory that was used
	CreatedDirs  []string // Directories created, relative to the project root
	CreatedFiles []string // Files written, relative to the project root
}

// materializer is the concrete implementation of Materializer.
type materializer struct {
	src    fs.FS
	dst    afero.Fs
	logger *slog.Logger
}

// NewMaterializer creates a Materializer reading templates from src and
// writing projects to dst. In production src comes from go:embed and dst is
// afero.NewOsFs(); in tests use testing/fstest.MapFS and afero.NewMemMapFs().
func NewMaterializer(src fs.FS, dst afero.Fs, logger *slog.Logger) Materializer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &materializer{src: src, dst: dst, logger: logger}
}

// Materialize walks the template directory and writes every file to
// projectRoot. package.json and the silence config are written last with
// computed content.
func (m *materializer) Materialize(ctx context.Context, projectRoot string, sel *models.Selection) (*Result, error) {
	if err := sel.Validate(); err != nil {
		return nil, fmt.Errorf("materialize: %w", err)
	}
	projectRoot = filepath.Clean(projectRoot)
	desc := Resolve(sel)

	info, err := fs.Stat(m.src, desc.Dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, desc.Dir)
	}

	// Computed files are prepared before anything is written so that a
	// broken template leaves no partial project behind.
	manifest, err := m.readTemplateFile(desc.Dir, defs.PackageJSON)
	if err != nil {
		return nil, err
	}
	manifest, err = PatchManifest(manifest, sel.TargetName(), sel.Preprocessor)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", desc.Dir, err)
	}
	var config []byte
	if desc.HasConfig() {
		raw, err := m.readTemplateFile(desc.Dir, desc.ConfigFile)
		if err != nil {
			return nil, err
		}
		config = PatchConfig(raw, sel.Preprocessor)
	}

	if err := m.dst.MkdirAll(projectRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create project directory %q: %w", projectRoot, err)
	}

	result := &Result{Template: desc.Dir}
	computed := map[string][]byte{defs.PackageJSON: manifest}
	if desc.HasConfig() {
		computed[desc.ConfigFile] = config
	}

	walkErr := fs.WalkDir(m.src, desc.Dir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if p == desc.Dir {
			return nil
		}
		rel := strings.TrimPrefix(p, desc.Dir+"/")

		if err := validateDeployPath(projectRoot, rel); err != nil {
			return err
		}
		destPath := filepath.Join(projectRoot, filepath.FromSlash(rel))

		if entry.IsDir() {
			if err := m.dst.MkdirAll(destPath, 0o755); err != nil {
				return fmt.Errorf("template mkdir %q: %w", destPath, err)
			}
			result.CreatedDirs = append(result.CreatedDirs, rel)
			return nil
		}

		// Only the top-level manifest and config are computed.
		if _, ok := computed[rel]; ok {
			return nil
		}

		content, err := fs.ReadFile(m.src, p)
		if err != nil {
			return fmt.Errorf("template read %q: %w", p, err)
		}
		if err := m.write(destPath, content); err != nil {
			return err
		}
		result.CreatedFiles = append(result.CreatedFiles, rel)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if desc.HasConfig() {
		if err := m.write(filepath.Join(projectRoot, desc.ConfigFile), config); err != nil {
			return nil, err
		}
		result.CreatedFiles = append(result.CreatedFiles, desc.ConfigFile)
	}
	if err := m.write(filepath.Join(projectRoot, defs.PackageJSON), manifest); err != nil {
		return nil, err
	}
	result.CreatedFiles = append(result.CreatedFiles, defs.PackageJSON)

	m.logger.Debug("template materialized",
		"template", desc.Dir,
		"root", projectRoot,
		"files", len(result.CreatedFiles),
		"dirs", len(result.CreatedDirs),
	)
	return result, nil
}

// Templates lists the top-level directories of the template root.
func (m *materializer) Templates() []string {
	entries, err := fs.ReadDir(m.src, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names
}

// readTemplateFile reads a required top-level file of a template.
func (m *materializer) readTemplateFile(dir, name string) ([]byte, error) {
	data, err := fs.ReadFile(m.src, path.Join(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s/%s", ErrTemplateNotFound, dir, name)
		}
		return nil, fmt.Errorf("template read %s/%s: %w", dir, name, err)
	}
	return data, nil
}

// write stores content at destPath, creating parent directories.
// Shell scripts keep the executable bit.
func (m *materializer) write(destPath string, content []byte) error {
	if err := m.dst.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("template mkdir %q: %w", filepath.Dir(destPath), err)
	}
	perm := fs.FileMode(0o644)
	if strings.HasSuffix(destPath, ".sh") {
		perm = 0o755
	}
	if err := afero.WriteFile(m.dst, destPath, content, perm); err != nil {
		return fmt.Errorf("template write %q: %w", destPath, err)
	}
	m.logger.Debug("wrote file", "path", destPath, "bytes", len(content))
	return nil
}

// validateDeployPath ensures a template path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absPath := filepath.Join(projectRoot, cleaned)
	if !strings.HasPrefix(absPath, projectRoot+string(filepath.Separator)) && absPath != projectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}
	return nil
}
