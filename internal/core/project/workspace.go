package project

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Workspace is the directory new projects are created under, usually the
// process working directory.
type Workspace struct {
	fs     afero.Fs
	root   string
	logger *slog.Logger
}

// NewWorkspace creates a Workspace rooted at root on the given filesystem.
// A nil logger discards output.
func NewWorkspace(fsys afero.Fs, root string, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Workspace{fs: fsys, root: filepath.Clean(root), logger: logger}
}

// Root returns the workspace root.
func (w *Workspace) Root() string {
	return w.root
}

// Path resolves a project name against the workspace root. Absolute names
// are returned cleaned.
func (w *Workspace) Path(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(w.root, name)
}

// Exists reports whether anything exists at the project path.
func (w *Workspace) Exists(name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, ErrInvalidName
	}
	_, err := w.fs.Stat(w.Path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", w.Path(name), err)
}

// Remove deletes the project path recursively. A missing path is not an
// error. Failures are returned as *RemoveError.
func (w *Workspace) Remove(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	path := w.Path(name)
	if w.containsRoot(path) {
		return &RemoveError{Path: path, Kind: ErrOverwriteFailed, Cause: errors.New("refusing to remove the working directory or one of its parents")}
	}

	w.logger.Debug("removing existing directory", "path", path)
	if err := w.fs.RemoveAll(path); err != nil {
		return &RemoveError{Path: path, Kind: classifyRemoveError(err), Cause: err}
	}
	return nil
}

// containsRoot reports whether path is the workspace root or an ancestor
// of it.
func (w *Workspace) containsRoot(path string) bool {
	if path == w.root {
		return true
	}
	prefix := path
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(w.root+string(filepath.Separator), prefix)
}

// classifyRemoveError maps OS errors onto the removal sentinels.
func classifyRemoveError(err error) error {
	switch {
	case isBusy(err):
		return ErrDirectoryBusy
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return ErrOverwriteFailed
	}
}
