package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/spf13/afero"
)

// removeFailFs fails every RemoveAll with the configured error.
type removeFailFs struct {
	afero.Fs
	err error
}

func (f removeFailFs) RemoveAll(path string) error {
	return &os.PathError{Op: "unlinkat", Path: path, Err: f.err}
}

func TestWorkspaceExists(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll("/work/present", 0o755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}
	if err := afero.WriteFile(mem, "/work/file", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	w := NewWorkspace(mem, "/work", nil)

	tests := []struct {
		name string
		want bool
	}{
		{"present", true},
		{"file", true},
		{"absent", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := w.Exists(tt.name)
			if err != nil {
				t.Fatalf("Exists error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	t.Run("empty_name", func(t *testing.T) {
		if _, err := w.Exists(" "); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Exists error = %v, want ErrInvalidName", err)
		}
	})
}

func TestWorkspacePath(t *testing.T) {
	w := NewWorkspace(afero.NewMemMapFs(), "/work/", nil)
	if got := w.Path("app"); got != filepath.Join("/work", "app") {
		t.Errorf("Path(app) = %q", got)
	}
	abs := filepath.Join(string(filepath.Separator), "elsewhere", "app")
	if got := w.Path(abs); got != abs {
		t.Errorf("Path(%q) = %q", abs, got)
	}
}

func TestWorkspaceRemove(t *testing.T) {
	t.Run("removes_tree", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		if err := afero.WriteFile(mem, "/work/app/src/main.js", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
		w := NewWorkspace(mem, "/work", nil)
		if err := w.Remove("app"); err != nil {
			t.Fatalf("Remove error: %v", err)
		}
		if ok, _ := afero.Exists(mem, "/work/app"); ok {
			t.Error("directory should be gone")
		}
	})

	t.Run("missing_is_not_error", func(t *testing.T) {
		w := NewWorkspace(afero.NewMemMapFs(), "/work", nil)
		if err := w.Remove("ghost"); err != nil {
			t.Fatalf("Remove error: %v", err)
		}
	})

	t.Run("refuses_workspace_root", func(t *testing.T) {
		w := NewWorkspace(afero.NewMemMapFs(), "/work", nil)
		err := w.Remove(".")
		if !errors.Is(err, ErrOverwriteFailed) {
			t.Fatalf("Remove(.) error = %v, want ErrOverwriteFailed", err)
		}
	})

	ancestors := []struct {
		name string
		arg  string
	}{
		{"parent", ".."},
		{"grandparent", "../.."},
		{"filesystem_root", "/"},
		{"absolute_parent", "/home"},
	}
	for _, tt := range ancestors {
		t.Run("refuses_ancestor_"+tt.name, func(t *testing.T) {
			mem := afero.NewMemMapFs()
			if err := afero.WriteFile(mem, "/home/u/work/keep.txt", []byte("x"), 0o644); err != nil {
				t.Fatalf("WriteFile error: %v", err)
			}
			w := NewWorkspace(mem, "/home/u/work", nil)

			err := w.Remove(tt.arg)
			var re *RemoveError
			if !errors.As(err, &re) || !errors.Is(err, ErrOverwriteFailed) {
				t.Fatalf("Remove(%q) error = %v, want ErrOverwriteFailed RemoveError", tt.arg, err)
			}
			if ok, _ := afero.Exists(mem, "/home/u/work/keep.txt"); !ok {
				t.Errorf("Remove(%q) deleted the working directory", tt.arg)
			}
		})
	}

	t.Run("sibling_with_root_prefix", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		if err := afero.WriteFile(mem, "/home/u/work-old/a.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
		w := NewWorkspace(mem, "/home/u/work", nil)
		if err := w.Remove("../work-old"); err != nil {
			t.Fatalf("Remove error: %v", err)
		}
		if ok, _ := afero.Exists(mem, "/home/u/work-old"); ok {
			t.Error("sibling directory should be removed")
		}
	})

	classify := []struct {
		name    string
		cause   error
		want    error
		message string
	}{
		{"busy", syscall.EBUSY, ErrDirectoryBusy, "The directory has been opened, please close and try again"},
		{"eperm", syscall.EPERM, ErrPermissionDenied, "Do not have permission to operate this directory"},
		{"eacces", syscall.EACCES, ErrPermissionDenied, "Do not have permission to operate this directory"},
		{"other", syscall.EIO, ErrOverwriteFailed, "Overwrite the directory failed: "},
	}
	for _, tt := range classify {
		t.Run("classify_"+tt.name, func(t *testing.T) {
			w := NewWorkspace(removeFailFs{Fs: afero.NewMemMapFs(), err: tt.cause}, "/work", nil)
			err := w.Remove("app")

			var re *RemoveError
			if !errors.As(err, &re) {
				t.Fatalf("expected *RemoveError, got %T (%v)", err, err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("error = %v, want to wrap %v", err, tt.cause)
			}
			if !strings.HasPrefix(re.UserMessage(), tt.message) {
				t.Errorf("UserMessage() = %q, want prefix %q", re.UserMessage(), tt.message)
			}
		})
	}
}

func TestClassifyPermissionSentinel(t *testing.T) {
	if got := classifyRemoveError(fs.ErrPermission); got != ErrPermissionDenied {
		t.Errorf("classifyRemoveError(fs.ErrPermission) = %v, want ErrPermissionDenied", got)
	}
}
